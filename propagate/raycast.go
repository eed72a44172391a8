package propagate

import (
	"github.com/katalvlaran/geodesic/geomkit"
	"github.com/katalvlaran/geodesic/meshgraph"
)

// rayHit is the result of extending a ray from a window's pseudosource
// through one of its extreme parameter points, looking for which of the
// receiving face's two far edges it actually strikes.
type rayHit struct {
	point geomkit.Point2
	edge  meshgraph.EdgeID
}

// castExtremeRay extends the ray pseudo2D -> through and returns whichever
// of the two candidate far edges (edgeAv spanning a2D-v2D, edgeBv
// spanning b2D-v2D) it strikes first, within tolerance. Mitchell-Mount-
// Papadimitriou propagation always hits exactly one of the two, since
// they're the only edges of the receiving triangle other than the shared
// base edge.
func castExtremeRay(pseudo2D, through, a2D, b2D, v2D geomkit.Point2, edgeAv, edgeBv meshgraph.EdgeID, eps float64) (rayHit, bool) {
	if p, ok := rayIntersectSegment(pseudo2D, through, a2D, v2D, eps); ok {
		return rayHit{point: p, edge: edgeAv}, true
	}
	if p, ok := rayIntersectSegment(pseudo2D, through, b2D, v2D, eps); ok {
		return rayHit{point: p, edge: edgeBv}, true
	}
	return rayHit{}, false
}

// rayIntersectSegment intersects the ray from origin through "through"
// (and beyond) with the segment [segA,segB], requiring the hit to lie at
// or beyond "through" (within a 1e-6 relative tolerance along the ray)
// and within the segment's bounds.
func rayIntersectSegment(origin, through, segA, segB geomkit.Point2, eps float64) (geomkit.Point2, bool) {
	hit, ok := geomkit.IntersectLines2D(origin, through, segA, segB, eps)
	if !ok {
		return geomkit.Point2{}, false
	}

	dir := geomkit.Point2{X: through.X - origin.X, Y: through.Y - origin.Y}
	toHit := geomkit.Point2{X: hit.X - origin.X, Y: hit.Y - origin.Y}
	dirLenSq := dir.X*dir.X + dir.Y*dir.Y
	if dirLenSq < eps*eps {
		return geomkit.Point2{}, false
	}
	t := (toHit.X*dir.X + toHit.Y*dir.Y) / dirLenSq
	if t < 1-1e-6 {
		return geomkit.Point2{}, false // hit falls behind the window's own boundary point
	}

	segLenSq := (segB.X-segA.X)*(segB.X-segA.X) + (segB.Y-segA.Y)*(segB.Y-segA.Y)
	if segLenSq < eps*eps {
		return geomkit.Point2{}, false
	}
	u := ((hit.X-segA.X)*(segB.X-segA.X) + (hit.Y-segA.Y)*(segB.Y-segA.Y)) / segLenSq
	if u < -1e-6 || u > 1+1e-6 {
		return geomkit.Point2{}, false
	}
	return hit, true
}
