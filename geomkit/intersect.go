package geomkit

import "math"

// IntersectLines2D returns the intersection point of the infinite lines
// through (p1,p2) and (p3,p4), using eps as the degeneracy tolerance on
// the determinant of the 2x2 system. ok is false when the lines are
// parallel (or nearly so) within eps.
//
// Grounded on the segment-intersection epsilon handling used throughout
// the constrained-Delaunay/mesh literature: rather than testing the
// determinant against exactly zero, it is compared against eps scaled to
// the problem's length scale by the caller.
//
// Complexity: O(1).
func IntersectLines2D(p1, p2, p3, p4 Point2, eps float64) (Point2, bool) {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	denom := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(denom) < eps {
		return Point2{}, false
	}
	diff := p3.Sub(p1)
	t := (diff.X*d2.Y - diff.Y*d2.X) / denom
	return Point2{X: p1.X + t*d1.X, Y: p1.Y + t*d1.Y}, true
}

// ClosestPointOnSegment returns the point on the closed segment [a,b]
// nearest to p, together with the parameter t in [0,1] at which it
// occurs. Used to evaluate a window's shortest_distance lower bound:
// the closest approach of the pseudosource to the live interval.
//
// Complexity: O(1).
func ClosestPointOnSegment(p, a, b Point2) (Point2, float64) {
	ab := b.Sub(a)
	length2 := ab.X*ab.X + ab.Y*ab.Y
	if length2 == 0 {
		return a, 0
	}
	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / length2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Point2{X: a.X + t*ab.X, Y: a.Y + t*ab.Y}, t
}
