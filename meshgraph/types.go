package meshgraph

import (
	"math"

	"github.com/katalvlaran/geodesic/geomkit"
)

// VertexID indexes a mesh vertex in [0, V).
type VertexID uint32

// FaceID indexes a mesh triangle in [0, F).
type FaceID uint32

// EdgeID indexes a deduplicated mesh edge in [0, E).
type EdgeID uint32

// NoFace is the sentinel used in Edge.Faces[1] for a boundary edge (one
// that belongs to only a single triangle).
const NoFace FaceID = math.MaxUint32

// NoEdge is the sentinel returned when an edge lookup fails.
const NoEdge EdgeID = math.MaxUint32

// Tri is a triangle given as three vertex indices, in the orientation
// supplied by the caller (not required to be outward-consistent).
type Tri struct {
	V [3]VertexID
}

// Edge is a deduplicated, unordered pair of vertex indices together with
// its precomputed 3D length and the one or two faces it bounds. A is
// always the smaller of the two endpoint indices; this fixes a single
// canonical parametrization direction (A -> B, t in [0, Length]) shared
// by every window that ever lives on this edge, regardless of which
// adjacent face created it.
type Edge struct {
	A, B   VertexID
	Length float64
	Faces  [2]FaceID // Faces[1] == NoFace when the edge is a boundary edge
}

// Mesh is the immutable triangulated-surface graph. Build it once with
// Build; every method below is read-only.
type Mesh struct {
	vertices []geomkit.Point3
	faces    []Tri
	edges    []Edge

	faceEdges   [][3]EdgeID // faceEdges[f][i] = edge between faces[f].V[i] and faces[f].V[(i+1)%3]
	vertexEdges [][]EdgeID
	vertexFaces [][]FaceID

	edgeIndex map[[2]VertexID]EdgeID
}

// VertexCount returns V.
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// FaceCount returns F.
func (m *Mesh) FaceCount() int { return len(m.faces) }

// EdgeCount returns E.
func (m *Mesh) EdgeCount() int { return len(m.edges) }

// Vertex returns the 3D position of vertex v.
func (m *Mesh) Vertex(v VertexID) geomkit.Point3 { return m.vertices[v] }

// Face returns the triangle f's three vertex indices.
func (m *Mesh) Face(f FaceID) Tri { return m.faces[f] }

// Edge returns a copy of edge e's data.
func (m *Mesh) Edge(e EdgeID) Edge { return m.edges[e] }

// EdgeLength returns the precomputed 3D length of edge e.
func (m *Mesh) EdgeLength(e EdgeID) float64 { return m.edges[e].Length }

// IsBoundary reports whether edge e belongs to only one face.
func (m *Mesh) IsBoundary(e EdgeID) bool { return m.edges[e].Faces[1] == NoFace }

// IsBoundaryVertex reports whether v has at least one incident boundary
// edge, i.e. the mesh's surface has an open edge at v. Spec §4.3's
// saddle/corner rule re-emits a far vertex as a new pseudosource when it
// is either a saddle (AngleSum > 2*pi) or lies on the boundary: a
// boundary vertex's incident faces never sum to a full turn, so it would
// never trip the AngleSum test on its own.
func (m *Mesh) IsBoundaryVertex(v VertexID) bool {
	for _, e := range m.vertexEdges[v] {
		if m.IsBoundary(e) {
			return true
		}
	}
	return false
}

// VertexEdges returns the edges incident to vertex v.
func (m *Mesh) VertexEdges(v VertexID) []EdgeID { return m.vertexEdges[v] }

// VertexFaces returns the faces incident to vertex v.
func (m *Mesh) VertexFaces(v VertexID) []FaceID { return m.vertexFaces[v] }

// FindEdge returns the EdgeID for the unordered pair (a,b), or NoEdge if
// no such edge exists in the mesh.
func (m *Mesh) FindEdge(a, b VertexID) EdgeID {
	if a > b {
		a, b = b, a
	}
	if id, ok := m.edgeIndex[[2]VertexID{a, b}]; ok {
		return id
	}
	return NoEdge
}

// OppositeFace returns the face on the other side of edge e from face f,
// and false if e is a boundary edge or f is not one of e's faces.
func (m *Mesh) OppositeFace(e EdgeID, f FaceID) (FaceID, bool) {
	edge := m.edges[e]
	switch f {
	case edge.Faces[0]:
		if edge.Faces[1] == NoFace {
			return NoFace, false
		}
		return edge.Faces[1], true
	case edge.Faces[1]:
		return edge.Faces[0], true
	default:
		return NoFace, false
	}
}

// localIndexOf returns the local index (0,1,2) of vertex v within face f,
// or -1 if v is not a vertex of f.
func (m *Mesh) localIndexOf(f FaceID, v VertexID) int {
	tri := m.faces[f]
	for i, fv := range tri.V {
		if fv == v {
			return i
		}
	}
	return -1
}

// FarVertex returns the vertex of face f that is not an endpoint of edge
// e, i.e. the triangle's apex relative to that edge. f must be one of
// e's adjacent faces.
func (m *Mesh) FarVertex(f FaceID, e EdgeID) VertexID {
	edge := m.edges[e]
	tri := m.faces[f]
	for i, v := range tri.V {
		if v != edge.A && v != edge.B {
			_ = i
			return v
		}
	}
	// Unreachable for a valid mesh: every face has exactly one vertex not
	// on any given one of its own edges.
	return tri.V[0]
}

// OppositeEdge returns the edge of face f that does not touch vertex v
// (v must be one of f's three vertices).
func (m *Mesh) OppositeEdge(f FaceID, v VertexID) EdgeID {
	idx := m.localIndexOf(f, v)
	if idx < 0 {
		return NoEdge
	}
	return m.faceEdges[f][(idx+1)%3]
}

// AngleSum returns the sum, over every face incident to vertex v, of the
// interior angle that face subtends at v. A value greater than 2*pi
// (beyond tolerance) marks v as a saddle vertex under spec §4.3's
// saddle/corner rule.
func (m *Mesh) AngleSum(v VertexID) float64 {
	total := 0.0
	for _, f := range m.vertexFaces[v] {
		total += m.faceAngleAt(f, v)
	}
	return total
}

// faceAngleAt returns the interior angle of face f at vertex v, computed
// via the law of cosines from the triangle's three precomputed 3D edge
// lengths.
func (m *Mesh) faceAngleAt(f FaceID, v VertexID) float64 {
	tri := m.faces[f]
	idx := m.localIndexOf(f, v)
	other1 := tri.V[(idx+1)%3]
	other2 := tri.V[(idx+2)%3]
	dv1 := geomkit.EdgeLength(m.vertices[v], m.vertices[other1])
	dv2 := geomkit.EdgeLength(m.vertices[v], m.vertices[other2])
	d12 := geomkit.EdgeLength(m.vertices[other1], m.vertices[other2])
	return geomkit.LawOfCosinesAngle(dv1, dv2, d12)
}
