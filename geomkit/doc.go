// Package geomkit provides the double-precision 3D/2D geometry primitives
// that the rest of geodesic builds on: point/vector arithmetic, the
// law-of-cosines angle used at mesh vertices, planar unfolding of an
// adjacent triangle across a shared edge, and tolerance-aware 2D line
// intersection.
//
// Everything here is pure and allocation-free on the hot path: no package
// state, no goroutines, just double-precision math with explicit epsilon
// handling at the boundaries where near-degenerate geometry would
// otherwise produce NaN.
//
// Numeric policy:
//
//   - Epsilon(edgeLen) returns 1e-10*edgeLen, the tolerance used throughout
//     geodesic for parameter comparisons along an edge of that length.
//   - Cosine arguments are always clamped to [-1, 1] before math.Acos to
//     absorb floating-point overshoot from near-straight or near-degenerate
//     triangles.
package geomkit
