package window

import (
	"github.com/katalvlaran/geodesic/geomkit"
	"github.com/katalvlaran/geodesic/meshgraph"
)

// Window is a live wavefront fragment on a directed mesh edge (spec §3).
//
// Edge/FaceFrom fix where the window lives and which of the edge's
// (at most two) adjacent faces it arrived from — propagation always
// targets the other face. B0/B1 parametrize the covered sub-interval of
// the edge, 0 <= B0 < B1 <= edge length. D0/D1 are the geodesic
// distances from the pseudosource to those two endpoints. Pseudo2D is
// the pseudosource's position in the edge's canonical 2D frame, and
// DSource is the accumulated geodesic distance from the true source to
// the pseudosource.
//
// Generation is set by intervallist.List to a fresh per-edge value on
// every piece it re-creates while resolving an overlap (a window placed
// without any overlap keeps the value it was built with); the list uses
// it to order windows with equal B0. The priority queue does not consult
// it: propagate.Engine marks stale queue entries by pointer instead.
type Window struct {
	Edge       meshgraph.EdgeID
	FaceFrom   meshgraph.FaceID
	B0, B1     float64
	D0, D1     float64
	Pseudo2D   geomkit.Point2
	DSource    float64
	Generation uint64
}

// DistanceAt returns the window's distance function evaluated at
// parameter t on the edge: DSource + the Euclidean distance, in the
// window's 2D frame, from the pseudosource to (t, 0).
func (w *Window) DistanceAt(t float64) float64 {
	return w.DSource + w.Pseudo2D.Dist(geomkit.Point2{X: t, Y: 0})
}

// ShortestDistance returns the window's priority-queue key: the lower
// bound DSource + (distance from the pseudosource to the closest point
// of [B0,B1]). Because DistanceAt is convex in t, this minimum occurs
// either at the perpendicular foot of the pseudosource (if it falls
// inside [B0,B1]) or at whichever endpoint is closer.
func (w *Window) ShortestDistance() float64 {
	closest, _ := geomkit.ClosestPointOnSegment(w.Pseudo2D, geomkit.Point2{X: w.B0, Y: 0}, geomkit.Point2{X: w.B1, Y: 0})
	return w.DSource + w.Pseudo2D.Dist(closest)
}

// Length returns B1 - B0.
func (w *Window) Length() float64 { return w.B1 - w.B0 }
