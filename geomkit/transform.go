package geomkit

import "math/cmplx"

// Transform2D is a rigid-motion (rotation, optional reflection,
// translation) mapping points expressed in one edge's canonical 2D
// unfolding frame into another edge's canonical frame. Propagation needs
// this whenever a window crosses from its parent edge into a neighboring
// edge: the pseudosource is not a mesh vertex and so has no independent
// "unfold" formula of its own, but every frame shares at least two
// points (the common face's vertices) whose positions are known in both
// frames, which is enough to pin the isometry down exactly.
type Transform2D struct {
	o1, n1 complex128
	k      complex128
	mirror bool
}

func toComplex(p Point2) complex128 { return complex(p.X, p.Y) }

func fromComplex(c complex128) Point2 { return Point2{X: real(c), Y: imag(c)} }

// BuildTransform2D returns the isometry mapping oldP1->newP1 and
// oldP2->newP2. Because two edge frames can disagree on which side is
// "up", a third known correspondence (oldCheck -> newCheck, typically
// the shared face's remaining vertex) disambiguates a pure rotation from
// a rotation-plus-reflection: whichever candidate reproduces newCheck
// within eps is the one returned.
func BuildTransform2D(oldP1, oldP2, newP1, newP2, oldCheck, newCheck Point2, eps float64) Transform2D {
	o1, o2 := toComplex(oldP1), toComplex(oldP2)
	n1, n2 := toComplex(newP1), toComplex(newP2)
	denom := o2 - o1

	direct := Transform2D{o1: o1, n1: n1, k: (n2 - n1) / denom, mirror: false}
	if direct.Apply(oldCheck).Dist(newCheck) <= eps {
		return direct
	}
	return Transform2D{o1: o1, n1: n1, k: (n2 - n1) / cmplx.Conj(denom), mirror: true}
}

// Apply maps p from the old frame into the new frame.
func (t Transform2D) Apply(p Point2) Point2 {
	v := toComplex(p) - t.o1
	if t.mirror {
		v = cmplx.Conj(v)
	}
	return fromComplex(t.n1 + t.k*v)
}
