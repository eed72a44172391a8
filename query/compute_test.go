package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geodesic/geomkit"
	"github.com/katalvlaran/geodesic/meshgraph"
	"github.com/katalvlaran/geodesic/query"
)

func flatGrid(t *testing.T, n int) (*meshgraph.Mesh, func(i, j int) meshgraph.VertexID) {
	t.Helper()
	idx := func(i, j int) meshgraph.VertexID { return meshgraph.VertexID(i*n + j) }

	vertices := make([]geomkit.Point3, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			vertices = append(vertices, geomkit.Point3{X: float64(j), Y: float64(i), Z: 0})
		}
	}
	var triangles []meshgraph.Tri
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1; j++ {
			a, b, c, d := idx(i, j), idx(i, j+1), idx(i+1, j+1), idx(i+1, j)
			triangles = append(triangles,
				meshgraph.Tri{V: [3]meshgraph.VertexID{a, b, c}},
				meshgraph.Tri{V: [3]meshgraph.VertexID{a, c, d}},
			)
		}
	}
	m, err := meshgraph.Build(vertices, triangles)
	require.NoError(t, err)
	return m, idx
}

func findTriple(rows, cols []meshgraph.VertexID, vals []float64, r, c meshgraph.VertexID) (float64, bool) {
	for i := range vals {
		if rows[i] == r && cols[i] == c {
			return vals[i], true
		}
	}
	return 0, false
}

func TestComputeGdist_NearestOfMultipleSources(t *testing.T) {
	m, idx := flatGrid(t, 4)
	sources := []meshgraph.VertexID{idx(0, 0), idx(3, 3)}
	targets := []meshgraph.VertexID{idx(0, 1), idx(3, 2)}

	d, err := query.ComputeGdist(m, sources, targets)
	require.NoError(t, err)
	require.Len(t, d, len(targets))
	assert.InDelta(t, 1.0, d[0], 1e-6)
	assert.InDelta(t, 1.0, d[1], 1e-6)
}

func TestComputeGdist_PreservesOrderAndDuplicates(t *testing.T) {
	m, idx := flatGrid(t, 4)
	sources := []meshgraph.VertexID{idx(0, 0)}
	a, b := idx(0, 1), idx(1, 1)
	targets := []meshgraph.VertexID{b, a, a}

	d, err := query.ComputeGdist(m, sources, targets)
	require.NoError(t, err)
	require.Len(t, d, 3)
	assert.InDelta(t, d[1], d[2], 1e-12)
	assert.Greater(t, d[0], d[1], "d[0] belongs to b (sqrt 2 away), d[1] to a (1 away)")
}

func TestComputeGdist_UnknownTargetErrors(t *testing.T) {
	m, idx := flatGrid(t, 2)
	_, err := query.ComputeGdist(m, []meshgraph.VertexID{idx(0, 0)}, []meshgraph.VertexID{999})
	assert.Error(t, err)
}

func TestComputeGdistFromOrigin_MatchesComputeGdist(t *testing.T) {
	m, idx := flatGrid(t, 4)
	targets := []meshgraph.VertexID{idx(3, 3)}

	single, err := query.ComputeGdistFromOrigin(m, idx(0, 0), targets)
	require.NoError(t, err)

	multi, err := query.ComputeGdist(m, []meshgraph.VertexID{idx(0, 0)}, targets)
	require.NoError(t, err)

	assert.InDelta(t, multi[0], single[0], 1e-9)
}

func TestComputeFullDistanceFieldFromZero_CoversEveryVertex(t *testing.T) {
	m, idx := flatGrid(t, 4)

	d, err := query.ComputeFullDistanceFieldFromZero(m)
	require.NoError(t, err)
	require.Len(t, d, m.VertexCount())
	assert.InDelta(t, 0, d[idx(0, 0)], 1e-12)
	assert.InDelta(t, 1.0, d[idx(0, 1)], 1e-6)
	assert.InDelta(t, 3.0, d[idx(0, 3)], 1e-6)
}

func TestComputeFullDistanceFieldFromZero_NilMesh(t *testing.T) {
	_, err := query.ComputeFullDistanceFieldFromZero(nil)
	assert.ErrorIs(t, err, query.ErrNilMesh)
}

func TestComputeGdist_NilMesh(t *testing.T) {
	_, err := query.ComputeGdist(nil, nil, nil)
	assert.ErrorIs(t, err, query.ErrNilMesh)
}

// TestComputeGdist_EmptyTargetsStillSeeds is a regression test: an empty
// (but non-nil) targets slice must not make the engine's early-termination
// check trivially true before sources are ever seeded and propagated.
func TestComputeGdist_EmptyTargetsStillSeeds(t *testing.T) {
	m, idx := flatGrid(t, 3)
	d, err := query.ComputeGdist(m, []meshgraph.VertexID{idx(0, 0)}, []meshgraph.VertexID{})
	require.NoError(t, err)
	assert.Empty(t, d)

	_, err = query.ComputeGdist(m, []meshgraph.VertexID{999}, []meshgraph.VertexID{})
	assert.Error(t, err, "an out-of-range source must still be rejected when targets is empty")
}

func TestDistanceMatrixOfSelectedPoints_OmitsDiagonal(t *testing.T) {
	m, idx := flatGrid(t, 3)
	points := []meshgraph.VertexID{idx(0, 0), idx(0, 1), idx(2, 2)}

	rows, cols, vals, err := query.DistanceMatrixOfSelectedPoints(m, points)
	require.NoError(t, err)
	require.Len(t, vals, len(points)*(len(points)-1))
	for _, p := range points {
		_, ok := findTriple(rows, cols, vals, p, p)
		assert.False(t, ok, "diagonal entry (%d,%d) must be omitted", p, p)
	}
}

func TestSymmetrize_AveragesAsymmetricEntries(t *testing.T) {
	m, idx := flatGrid(t, 3)
	points := []meshgraph.VertexID{idx(0, 0), idx(2, 2)}

	rows, cols, vals, err := query.DistanceMatrixOfSelectedPoints(m, points)
	require.NoError(t, err)

	symRows, symCols, symVals := query.Symmetrize(rows, cols, vals)
	fwd, ok := findTriple(symRows, symCols, symVals, points[0], points[1])
	require.True(t, ok)
	rev, ok := findTriple(symRows, symCols, symVals, points[1], points[0])
	require.True(t, ok)
	assert.InDelta(t, fwd, rev, 1e-9)
}
