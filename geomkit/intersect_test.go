package geomkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geodesic/geomkit"
)

func TestIntersectLines2D_Basic(t *testing.T) {
	p, ok := geomkit.IntersectLines2D(
		geomkit.Point2{X: 0, Y: 0}, geomkit.Point2{X: 2, Y: 2},
		geomkit.Point2{X: 0, Y: 2}, geomkit.Point2{X: 2, Y: 0},
		1e-12,
	)
	require.True(t, ok)
	assert.InDelta(t, 1.0, p.X, 1e-9)
	assert.InDelta(t, 1.0, p.Y, 1e-9)
}

func TestIntersectLines2D_Parallel(t *testing.T) {
	_, ok := geomkit.IntersectLines2D(
		geomkit.Point2{X: 0, Y: 0}, geomkit.Point2{X: 1, Y: 0},
		geomkit.Point2{X: 0, Y: 1}, geomkit.Point2{X: 1, Y: 1},
		1e-12,
	)
	require.False(t, ok)
}

func TestClosestPointOnSegment_Clamps(t *testing.T) {
	p, tt := geomkit.ClosestPointOnSegment(
		geomkit.Point2{X: -5, Y: 1},
		geomkit.Point2{X: 0, Y: 0}, geomkit.Point2{X: 1, Y: 0},
	)
	assert.Equal(t, 0.0, tt)
	assert.Equal(t, geomkit.Point2{X: 0, Y: 0}, p)
}
