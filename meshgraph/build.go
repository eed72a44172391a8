package meshgraph

import (
	"fmt"

	"github.com/katalvlaran/geodesic/geomkit"
)

// Option configures Build. Mirrors the functional-option convention used
// throughout the corpus (core.GraphOption, dijkstra.Option): small,
// composable closures applied left-to-right over a private config.
type Option func(*buildConfig)

type buildConfig struct {
	oneIndexed bool
}

// WithOneIndexed subtracts 1 from every triangle vertex index before
// validating and registering it, for callers whose input triangles are
// 1-indexed (spec §6's is_one_indexed toggle).
func WithOneIndexed() Option {
	return func(c *buildConfig) { c.oneIndexed = true }
}

// Build constructs an immutable Mesh from the given vertices and
// triangles. It deduplicates edges, validates structural invariants
// (spec §4.2), and precomputes adjacency, edge lengths, and per-face
// edge lists used by the propagation engine.
//
// Returns ErrInvalidMesh, wrapped with the offending index, if: a
// triangle references an out-of-range vertex; an edge is shared by more
// than two faces; or a face has two coincident vertices within
// tolerance.
//
// Complexity: O(V + F) time and space.
func Build(vertices []geomkit.Point3, triangles []Tri, opts ...Option) (*Mesh, error) {
	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	faces := make([]Tri, len(triangles))
	copy(faces, triangles)
	if cfg.oneIndexed {
		for i := range faces {
			for j := range faces[i].V {
				if faces[i].V[j] == 0 {
					return nil, fmt.Errorf("%w: one-indexed triangle %d has a zero vertex index", ErrInvalidMesh, i)
				}
				faces[i].V[j]--
			}
		}
	}

	v := len(vertices)
	for i, tri := range faces {
		for _, idx := range tri.V {
			if int(idx) >= v {
				return nil, fmt.Errorf("%w: triangle %d references out-of-range vertex %d (have %d vertices)", ErrInvalidMesh, i, idx, v)
			}
		}
	}

	coincidentEps := boundingBoxEpsilon(vertices)
	for i, tri := range faces {
		if err := checkCoincident(vertices, tri, coincidentEps); err != nil {
			return nil, fmt.Errorf("%w: triangle %d has coincident vertices: %v", ErrInvalidMesh, i, err)
		}
	}

	edges := make([]Edge, 0, len(faces)*3/2)
	edgeIndex := make(map[[2]VertexID]EdgeID, len(faces)*3/2)
	faceEdges := make([][3]EdgeID, len(faces))

	for f, tri := range faces {
		for i := 0; i < 3; i++ {
			a, b := tri.V[i], tri.V[(i+1)%3]
			key := canonicalKey(a, b)
			id, ok := edgeIndex[key]
			if !ok {
				id = EdgeID(len(edges))
				edgeIndex[key] = id
				edges = append(edges, Edge{
					A:      key[0],
					B:      key[1],
					Length: geomkit.EdgeLength(vertices[key[0]], vertices[key[1]]),
					Faces:  [2]FaceID{FaceID(f), NoFace},
				})
			} else {
				if edges[id].Faces[1] != NoFace {
					return nil, fmt.Errorf("%w: edge (%d,%d) is shared by more than two faces", ErrInvalidMesh, key[0], key[1])
				}
				edges[id].Faces[1] = FaceID(f)
			}
			faceEdges[f][i] = id
		}
	}

	vertexEdges := make([][]EdgeID, v)
	for id, e := range edges {
		vertexEdges[e.A] = append(vertexEdges[e.A], EdgeID(id))
		vertexEdges[e.B] = append(vertexEdges[e.B], EdgeID(id))
	}

	vertexFaces := make([][]FaceID, v)
	for f, tri := range faces {
		for _, vid := range tri.V {
			vertexFaces[vid] = append(vertexFaces[vid], FaceID(f))
		}
	}

	return &Mesh{
		vertices:    vertices,
		faces:       faces,
		edges:       edges,
		faceEdges:   faceEdges,
		vertexEdges: vertexEdges,
		vertexFaces: vertexFaces,
		edgeIndex:   edgeIndex,
	}, nil
}

func canonicalKey(a, b VertexID) [2]VertexID {
	if a > b {
		a, b = b, a
	}
	return [2]VertexID{a, b}
}

func checkCoincident(vertices []geomkit.Point3, tri Tri, eps float64) error {
	for i := 0; i < 3; i++ {
		a, b := tri.V[i], tri.V[(i+1)%3]
		if geomkit.EdgeLength(vertices[a], vertices[b]) < eps {
			return fmt.Errorf("vertices %d and %d are coincident", a, b)
		}
	}
	return nil
}

// boundingBoxEpsilon returns 1e-10 times the mesh's bounding-box
// diagonal, used as the absolute tolerance for detecting coincident
// vertices before any edge length is known.
func boundingBoxEpsilon(vertices []geomkit.Point3) float64 {
	if len(vertices) == 0 {
		return 1e-10
	}
	min, max := vertices[0], vertices[0]
	for _, p := range vertices[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	diag := geomkit.EdgeLength(min, max)
	if diag == 0 {
		return 1e-10
	}
	return 1e-10 * diag
}
