package propagate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geodesic/geomkit"
	"github.com/katalvlaran/geodesic/meshgraph"
	"github.com/katalvlaran/geodesic/window"
)

func squareMesh(t *testing.T) *meshgraph.Mesh {
	t.Helper()
	vertices := []geomkit.Point3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	triangles := []meshgraph.Tri{
		{V: [3]meshgraph.VertexID{0, 1, 2}},
		{V: [3]meshgraph.VertexID{0, 2, 3}},
	}
	m, err := meshgraph.Build(vertices, triangles)
	require.NoError(t, err)
	return m
}

// TestAllTargetsReached_GatesOnQueueHead is a regression test for the
// unsound early-termination check: writing a target's distance is not
// enough to stop early if a live window in the queue still carries a
// ShortestDistance lower bound below that written value, since such a
// window could still lower it further.
func TestAllTargetsReached_GatesOnQueueHead(t *testing.T) {
	m := squareMesh(t)
	eng := New(m, WithTargets([]meshgraph.VertexID{2}))

	// A detour window already wrote an upper-bound distance of 5.0 at
	// vertex 2, but the queue still holds an unprocessed window whose
	// ShortestDistance (1.0) is lower: that window might still improve
	// vertex 2, so termination must not yet fire.
	eng.dist[2] = 5.0
	eng.pushWindow(window.New(0, 0, geomkit.Point2{X: 0, Y: 0}, 1.0, 0, 1))
	assert.False(t, eng.allTargetsReached())

	// Once vertex 2's recorded distance is already at or below the
	// queue head's lower bound, no further work can improve it.
	eng.dist[2] = 0.5
	assert.True(t, eng.allTargetsReached())
}

// TestAllTargetsReached_EmptyQueueMeansDistanceIsFinal mirrors the
// ordinary drained-queue case: once nothing remains on the queue, any
// already-recorded target distance is final.
func TestAllTargetsReached_EmptyQueueMeansDistanceIsFinal(t *testing.T) {
	m := squareMesh(t)
	eng := New(m, WithTargets([]meshgraph.VertexID{2}))
	eng.dist[2] = 3.0
	assert.True(t, eng.allTargetsReached())
}

// TestAllTargetsReached_NoTargetsNeverTerminatesEarly matches spec
// §4.5: early termination only applies when a target set is configured.
func TestAllTargetsReached_NoTargetsNeverTerminatesEarly(t *testing.T) {
	m := squareMesh(t)
	eng := New(m)
	assert.False(t, eng.allTargetsReached())
}
