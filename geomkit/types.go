package geomkit

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Point3 is a double-precision point in 3-space. It is a direct alias of
// gonum's r3.Vec so that geomkit can lean on gonum's vector arithmetic
// (Add, Sub, Dot, Cross, Norm) instead of hand-rolling it.
type Point3 = r3.Vec

// Vec3 is a double-precision 3D displacement; same representation as
// Point3, kept as a distinct name at call sites for readability only.
type Vec3 = r3.Vec

// Point2 is a point in a 2D unfolding frame.
type Point2 struct {
	X, Y float64
}

// Sub returns p-q.
func (p Point2) Sub(q Point2) Point2 {
	return Point2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the Euclidean distance between p and q.
func (p Point2) Dist(q Point2) float64 {
	return hypot(p.X-q.X, p.Y-q.Y)
}

// Frame2D is the canonical local 2D embedding of a triangle: the first
// edge runs from P[0] to P[1] along the local x-axis, and P[2] (the far
// vertex) lies in the upper half-plane (Y > 0). meshgraph.Build does not
// build or store Frame2D values; per-edge 2D positions are computed on
// demand by meshgraph.Mesh.UnfoldVertex2D.
type Frame2D struct {
	P [3]Point2
}
