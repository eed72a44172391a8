package geomkit

import (
	"errors"
	"math"
)

// ErrUnfoldDegenerate is returned by UnfoldFarVertex when the supplied
// distances cannot form a valid, non-degenerate triangle with the base
// edge (the triangle inequality fails beyond tolerance).
var ErrUnfoldDegenerate = errors.New("geomkit: cannot unfold a degenerate triangle")

// UnfoldFarVertex computes the 2D coordinates of a triangle's third
// vertex given the length of its base edge (assumed to run from (0,0) to
// (edgeLen,0) in the local frame) and the two 3D distances from that
// vertex to each base endpoint. sign selects which half-plane the
// result lands in: +1 for the upper half-plane (Y>0), -1 for the lower.
//
// This is the planar-unfolding step at the heart of MMP propagation
// (spec §4.1): the receiving face is flattened into the window's frame
// by placing its far vertex isometrically relative to the shared edge,
// using only the two known edge lengths — the classic unfold-by-two-
// circles construction.
//
// Complexity: O(1).
func UnfoldFarVertex(edgeLen, distFromStart, distFromEnd, sign float64) (Point2, error) {
	if edgeLen <= 0 {
		return Point2{}, ErrUnfoldDegenerate
	}
	// x solves distFromStart^2 - x^2 == distFromEnd^2 - (edgeLen-x)^2
	x := (distFromStart*distFromStart - distFromEnd*distFromEnd + edgeLen*edgeLen) / (2 * edgeLen)
	y2 := distFromStart*distFromStart - x*x
	eps := Epsilon(edgeLen)
	if y2 < -eps {
		return Point2{}, ErrUnfoldDegenerate
	}
	if y2 < 0 {
		y2 = 0
	}
	y := math.Sqrt(y2)
	if sign < 0 {
		y = -y
	}
	return Point2{X: x, Y: y}, nil
}
