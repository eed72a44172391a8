package ingest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geodesic/ingest"
	"github.com/katalvlaran/geodesic/meshgraph"
)

const twoTriangleSquareFile = `4 2
0 0 0
1 0 0
1 1 0
0 1 0
0 1 2
0 2 3
`

func TestParseFlatMeshFile_ZeroIndexed(t *testing.T) {
	vertices, triangles, err := ingest.ParseFlatMeshFile(strings.NewReader(twoTriangleSquareFile))
	require.NoError(t, err)
	require.Len(t, vertices, 4)
	require.Len(t, triangles, 2)
	assert.Equal(t, meshgraph.VertexID(0), triangles[0].V[0])

	m, err := meshgraph.Build(vertices, triangles)
	require.NoError(t, err)
	assert.Equal(t, 4, m.VertexCount())
}

func TestParseFlatMeshFile_OneIndexed(t *testing.T) {
	oneIndexedFile := `4 2
0 0 0
1 0 0
1 1 0
0 1 0
1 2 3
1 3 4
`
	vertices, triangles, err := ingest.ParseFlatMeshFile(strings.NewReader(oneIndexedFile), ingest.WithOneIndexed())
	require.NoError(t, err)
	_, err = meshgraph.Build(vertices, triangles)
	require.NoError(t, err)
	assert.Equal(t, meshgraph.VertexID(0), triangles[0].V[0])
}

func TestParseFlatMeshFile_MalformedHeader(t *testing.T) {
	_, _, err := ingest.ParseFlatMeshFile(strings.NewReader("not-a-header\n"))
	assert.ErrorIs(t, err, ingest.ErrMalformedHeader)
}

func TestParseFlatMeshFile_TruncatedFile(t *testing.T) {
	_, _, err := ingest.ParseFlatMeshFile(strings.NewReader("4 2\n0 0 0\n"))
	assert.ErrorIs(t, err, ingest.ErrTruncatedFile)
}

func TestParseFlatMeshFile_MalformedRow(t *testing.T) {
	_, _, err := ingest.ParseFlatMeshFile(strings.NewReader("1 0\nnot a vertex\n"))
	assert.ErrorIs(t, err, ingest.ErrMalformedRow)
}
