package intervallist

import (
	"math"

	"github.com/katalvlaran/geodesic/window"
)

// SolveCrossing returns the parameter values t, sorted ascending, at
// which a.DistanceAt(t) == b.DistanceAt(t). Because each window's
// distance function is convex (a translated Euclidean-distance cone),
// two windows' distance functions cross in at most two points (spec
// §4.4 step 2).
//
// Derivation: writing a's distance function as Ra + dist(pa, (t,0)) and
// b's as Rb + dist(pb, (t,0)), the equality dist(pa,(t,0)) - dist(pb,(t,0))
// == Rb-Ra is squared twice to eliminate both square roots, leaving a
// linear equation when Ra == Rb (the window's DSource are equal — the
// crossing is the ordinary perpendicular bisector of pa and pb) and an
// honest quadratic otherwise. Roots introduced by squaring are filtered
// out by re-checking the original (unsquared) equation's sign.
func SolveCrossing(a, b *window.Window) []float64 {
	px1, py1, r1 := a.Pseudo2D.X, a.Pseudo2D.Y, a.DSource
	px2, py2, r2 := b.Pseudo2D.X, b.Pseudo2D.Y, b.DSource
	r := r2 - r1 // b.DistanceAt - a.DistanceAt constant offset

	// LHS(t) = dist(pa,(t,0))^2 - dist(pb,(t,0))^2 - r^2, which collapses
	// to a linear function m*t + c because the t^2 terms cancel.
	m := 2 * (px2 - px1)
	c := (px1*px1 - px2*px2) + (py1*py1 - py2*py2) - r*r

	// scale is the characteristic magnitude of this pair's coordinates
	// and distances; every tolerance below is relEps*scale raised to
	// the power matching the degree of the quantity it bounds (m, r are
	// degree 1; aCoef, c are degree 2; the sign-check product is degree
	// 3; disc is degree 6), so the checks stay meaningful at mesh scales
	// far from unit length, per spec §4.4's relative numeric policy.
	scale := magnitudeScale(px1, py1, px2, py2, r1, r2)
	const relEps = 1e-10
	tol1 := relEps * scale
	if math.Abs(r) < tol1 {
		// Equal DSource: LHS(t) == 0 directly (no square root survives).
		if math.Abs(m) < tol1 {
			return nil
		}
		return []float64{-c / m}
	}

	// (m*t+c)^2 == 4*r^2*((t-px2)^2+py2^2)
	aCoef := m*m - 4*r*r
	bCoef := 2*m*c + 8*r*r*px2
	cCoef := c*c - 4*r*r*(px2*px2+py2*py2)

	scale2 := scale * scale
	scale3 := scale2 * scale
	scale6 := scale3 * scale3
	roots := quadraticRoots(aCoef, bCoef, cCoef, relEps*scale2, relEps*scale6)
	out := make([]float64, 0, 2)
	tolSign := relEps * scale3
	for _, t := range roots {
		lhs := m*t + c
		// Squaring requires lhs and r to share sign (both sides of the
		// pre-squared equation must have matched sign); lhs == 0 is
		// always valid since it forces r*dist2 == 0 consistently only
		// when dist2 == 0 too, but we accept it and let DistanceAt
		// equality act as the final arbiter via the caller's midpoint
		// evaluation, which tolerates a spurious root being dropped by
		// the later "pick winner at midpoint" step regardless.
		if lhs*r >= -tolSign {
			out = append(out, t)
		}
	}
	sortFloats(out)
	return out
}

// magnitudeScale returns the largest absolute value among vals, floored
// at 1 so the derived tolerances never collapse to zero for near-origin
// geometry.
func magnitudeScale(vals ...float64) float64 {
	scale := 1.0
	for _, v := range vals {
		if av := math.Abs(v); av > scale {
			scale = av
		}
	}
	return scale
}

// quadraticRoots solves a*t^2+b*t+c==0. A near-zero leading coefficient
// (within tolA) falls back to the linear solution; a discriminant
// within tolDisc of zero is treated as a repeated root.
func quadraticRoots(a, b, c, tolA, tolDisc float64) []float64 {
	if math.Abs(a) < tolA {
		if math.Abs(b) < tolA {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	if disc < tolDisc {
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(disc)
	return []float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)}
}

func sortFloats(vs []float64) {
	for i := 1; i < len(vs); i++ {
		for j := i; j > 0 && vs[j-1] > vs[j]; j-- {
			vs[j-1], vs[j] = vs[j], vs[j-1]
		}
	}
}
