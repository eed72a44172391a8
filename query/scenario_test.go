package query_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geodesic/geomkit"
	"github.com/katalvlaran/geodesic/ingest"
	"github.com/katalvlaran/geodesic/meshgraph"
	"github.com/katalvlaran/geodesic/query"
)

// loadFixture parses one of the testdata meshes, grounded on
// original_source's test_gdist.py scenarios (flat and "hedgehog" bumpy
// meshes), and builds the graph.
func loadFixture(t *testing.T, name string) *meshgraph.Mesh {
	t.Helper()
	path := filepath.Join("..", "testdata", name)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	vertices, triangles, err := ingest.ParseFlatMeshFile(f)
	require.NoError(t, err)
	m, err := meshgraph.Build(vertices, triangles)
	require.NoError(t, err)
	return m
}

func TestScenario_FlatMesh_SourceTargetDistance(t *testing.T) {
	m := loadFixture(t, "flat_triangular_mesh.txt")

	d, err := query.ComputeGdist(m, []meshgraph.VertexID{1}, []meshgraph.VertexID{2})
	require.NoError(t, err)

	// Vertices 1 and 2 are adjacent grid points one unit apart; the exact
	// geodesic distance on a flat mesh between mesh-adjacent points
	// equals their direct Euclidean distance.
	want := geomkit.EdgeLength(m.Vertex(1), m.Vertex(2))
	assert.InDelta(t, want, d[0], 1e-6)
}

func TestScenario_FlatMesh_Symmetry(t *testing.T) {
	m := loadFixture(t, "flat_triangular_mesh.txt")
	points := []meshgraph.VertexID{0, 12, 60, 110, 120}

	rows, cols, vals, err := query.DistanceMatrixOfSelectedPoints(m, points)
	require.NoError(t, err)
	for i := range vals {
		rev, ok := findTriple(rows, cols, vals, cols[i], rows[i])
		require.True(t, ok)
		assert.InDelta(t, vals[i], rev, 1e-6, "asymmetry at (%d,%d)", rows[i], cols[i])
	}
}

func TestScenario_FlatMesh_TriangleInequality(t *testing.T) {
	m := loadFixture(t, "flat_triangular_mesh.txt")
	points := []meshgraph.VertexID{0, 60, 120}

	rows, cols, vals, err := query.DistanceMatrixOfSelectedPoints(m, points)
	require.NoError(t, err)

	d02, ok := findTriple(rows, cols, vals, 0, 120)
	require.True(t, ok)
	d01, ok := findTriple(rows, cols, vals, 0, 60)
	require.True(t, ok)
	d12, ok := findTriple(rows, cols, vals, 60, 120)
	require.True(t, ok)

	assert.LessOrEqual(t, d02, d01+d12+1e-6)
}

func TestScenario_FlatMesh_LowerBoundedByEuclidean(t *testing.T) {
	m := loadFixture(t, "flat_triangular_mesh.txt")
	d, err := query.ComputeGdist(m, []meshgraph.VertexID{0}, []meshgraph.VertexID{120})
	require.NoError(t, err)

	euclid := geomkit.EdgeLength(m.Vertex(0), m.Vertex(120))
	assert.GreaterOrEqual(t, d[0]+1e-6, euclid)
}

func TestScenario_FlatMesh_CapMonotonicity(t *testing.T) {
	m := loadFixture(t, "flat_triangular_mesh.txt")

	_, _, cappedVals, err := query.LocalGdistMatrix(m, 0.3)
	require.NoError(t, err)
	_, _, uncappedVals, err := query.LocalGdistMatrix(m, 1e9)
	require.NoError(t, err)

	assert.Less(t, len(cappedVals), len(uncappedVals))
	for _, v := range cappedVals {
		assert.LessOrEqual(t, v, 0.3+1e-9)
	}
}

func TestScenario_FlatMesh_Determinism(t *testing.T) {
	m := loadFixture(t, "flat_triangular_mesh.txt")
	d1, err := query.ComputeGdist(m, []meshgraph.VertexID{1}, []meshgraph.VertexID{2})
	require.NoError(t, err)
	d2, err := query.ComputeGdist(m, []meshgraph.VertexID{1}, []meshgraph.VertexID{2})
	require.NoError(t, err)
	assert.Equal(t, d1[0], d2[0])
}

func TestScenario_HedgehogMesh_SourceTargetReachable(t *testing.T) {
	m := loadFixture(t, "hedgehog_mesh.txt")
	d, err := query.ComputeGdist(m, []meshgraph.VertexID{0}, []meshgraph.VertexID{1})
	require.NoError(t, err)
	assert.Greater(t, d[0], 0.0)

	euclid := geomkit.EdgeLength(m.Vertex(0), m.Vertex(1))
	assert.GreaterOrEqual(t, d[0]+1e-6, euclid)
}

func TestScenario_HedgehogMesh_NonFlatVertexExists(t *testing.T) {
	m := loadFixture(t, "hedgehog_mesh.txt")
	// The bumpy "hedgehog" surface is built from sinusoidal ring
	// perturbations precisely so some interior vertices fold past flat:
	// at least one vertex must have an angle sum away from 2*pi, unlike
	// the flat grid where every interior vertex sums to exactly 2*pi.
	foundNonFlat := false
	for v := 0; v < m.VertexCount(); v++ {
		if len(m.VertexFaces(meshgraph.VertexID(v))) < 5 {
			continue // skip boundary/apex vertices with few incident faces
		}
		sum := m.AngleSum(meshgraph.VertexID(v))
		if sum > 2*3.14159265+1e-3 || sum < 2*3.14159265-1e-3 {
			foundNonFlat = true
			break
		}
	}
	assert.True(t, foundNonFlat)
}
