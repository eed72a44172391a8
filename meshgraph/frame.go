package meshgraph

import "github.com/katalvlaran/geodesic/geomkit"

// UnfoldVertex2D returns the 2D position, in edge e's canonical frame
// (e.A at (0,0), e.B at (e.Length,0)), of the vertex of face f that is
// not an endpoint of e (i.e. f's apex relative to e).
//
// The sign of the result's Y coordinate is fixed by which side of e the
// face f lies on: +1 if f == e.Faces[0], -1 if f == e.Faces[1]. This
// gives every window a single, consistent convention: a window's
// pseudosource lies on the opposite side of its edge from the face it
// is about to propagate into (spec §3's window invariant), because the
// sending and receiving faces are always on opposite sides of
// Faces[0]/Faces[1] by construction.
//
// Complexity: O(1).
func (m *Mesh) UnfoldVertex2D(f FaceID, e EdgeID) (geomkit.Point2, error) {
	edge := m.edges[e]
	apex := m.FarVertex(f, e)
	distA := geomkit.EdgeLength(m.vertices[edge.A], m.vertices[apex])
	distB := geomkit.EdgeLength(m.vertices[edge.B], m.vertices[apex])
	sign := 1.0
	if f == edge.Faces[1] {
		sign = -1.0
	}
	return geomkit.UnfoldFarVertex(edge.Length, distA, distB, sign)
}
