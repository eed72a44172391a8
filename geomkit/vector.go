package geomkit

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

func hypot(dx, dy float64) float64 {
	return math.Hypot(dx, dy)
}

// EdgeLength returns the 3D Euclidean distance between a and b.
// Complexity: O(1).
func EdgeLength(a, b Point3) float64 {
	return r3.Norm(r3.Sub(b, a))
}

// Epsilon returns the absolute tolerance used for parameter comparisons
// on an edge of the given length: 1e-10*edgeLen, per geodesic's numeric
// policy (spec §4.4).
func Epsilon(edgeLen float64) float64 {
	return 1e-10 * edgeLen
}

// DistEpsilon returns the absolute tolerance used for distance
// comparisons given the scale of the distances involved: 1e-10 times the
// largest of the supplied magnitudes (floored at 1 to stay meaningful
// near the source).
func DistEpsilon(values ...float64) float64 {
	scale := 1.0
	for _, v := range values {
		if v > scale {
			scale = v
		}
	}
	return 1e-10 * scale
}

// clampCos bounds a law-of-cosines argument to [-1, 1], absorbing
// floating-point overshoot produced by near-degenerate triangles.
func clampCos(c float64) float64 {
	if c > 1 {
		return 1
	}
	if c < -1 {
		return -1
	}
	return c
}

// LawOfCosinesAngle returns the angle, in radians, opposite the side of
// length "opposite" in a triangle whose other two sides have lengths
// adjacent1 and adjacent2. The cosine argument is clamped to [-1, 1]
// before calling math.Acos so that near-degenerate triangles (where
// floating-point error can push the raw cosine slightly outside that
// range) never produce NaN.
func LawOfCosinesAngle(adjacent1, adjacent2, opposite float64) float64 {
	if adjacent1 <= 0 || adjacent2 <= 0 {
		return 0
	}
	cos := (adjacent1*adjacent1 + adjacent2*adjacent2 - opposite*opposite) / (2 * adjacent1 * adjacent2)
	return math.Acos(clampCos(cos))
}

// TriangleArea2 returns twice the area of the 3D triangle (a, b, c),
// i.e. the magnitude of the cross product of two of its edges. A value
// of (near) zero indicates a degenerate, zero-area face.
func TriangleArea2(a, b, c Point3) float64 {
	return r3.Norm(r3.Cross(r3.Sub(b, a), r3.Sub(c, a)))
}
