package window

import (
	"github.com/katalvlaran/geodesic/geomkit"
	"github.com/katalvlaran/geodesic/meshgraph"
)

// New builds a Window on the given edge, arriving from faceFrom, with
// pseudosource pseudo2D at accumulated distance dSource, covering the
// parametric interval [b0, b1]. D0/D1 are derived from the distance
// function so callers never have to keep them in sync by hand.
func New(edge meshgraph.EdgeID, faceFrom meshgraph.FaceID, pseudo2D geomkit.Point2, dSource, b0, b1 float64) *Window {
	w := &Window{
		Edge:     edge,
		FaceFrom: faceFrom,
		B0:       b0,
		B1:       b1,
		Pseudo2D: pseudo2D,
		DSource:  dSource,
	}
	w.D0 = w.DistanceAt(b0)
	w.D1 = w.DistanceAt(b1)
	return w
}

// WithInterval returns a copy of w restricted to the sub-interval
// [b0, b1] (which must lie within w's current [B0,B1]), recomputing
// D0/D1 but preserving Pseudo2D/DSource/FaceFrom/Edge. Used when a
// window is clipped or split during merge resolution (spec §4.4 step 5).
func (w *Window) WithInterval(b0, b1 float64) *Window {
	return New(w.Edge, w.FaceFrom, w.Pseudo2D, w.DSource, b0, b1)
}
