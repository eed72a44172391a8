package propagate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geodesic/geomkit"
	"github.com/katalvlaran/geodesic/meshgraph"
	"github.com/katalvlaran/geodesic/window"
)

// propagateOne expands a popped window across its far face, generating
// one or two child windows on the receiving face's other two edges
// (spec §4.3's propagation rule), and folds in the saddle-corner
// correction for the far vertex whenever the window's cone reaches it.
//
// A degenerate unfolding or a ray that strikes neither candidate far
// edge is fatal to the whole request: the engine aborts and reports the
// offending face/edge rather than silently under-propagating a region
// of the mesh.
func (e *Engine) propagateOne(w *window.Window) error {
	rf, ok := e.mesh.OppositeFace(w.Edge, w.FaceFrom)
	if !ok {
		return nil // boundary edge, nothing on the other side
	}

	edge := e.mesh.Edge(w.Edge)
	v := e.mesh.FarVertex(rf, w.Edge)
	apex2D, err := e.mesh.UnfoldVertex2D(rf, w.Edge)
	if err != nil {
		return fmt.Errorf("%w: face %d opposite edge %d: %v", ErrDegenerateGeometry, rf, w.Edge, err)
	}

	if err := e.applySaddleCorner(v, w, apex2D); err != nil {
		return err
	}

	a2D := geomkit.Point2{X: 0, Y: 0}
	b2D := geomkit.Point2{X: edge.Length, Y: 0}
	edgeAv := e.mesh.FindEdge(edge.A, v)
	edgeBv := e.mesh.FindEdge(edge.B, v)
	eps := geomkit.Epsilon(edge.Length)

	hit0, ok0 := castExtremeRay(w.Pseudo2D, geomkit.Point2{X: w.B0, Y: 0}, a2D, b2D, apex2D, edgeAv, edgeBv, eps)
	hit1, ok1 := castExtremeRay(w.Pseudo2D, geomkit.Point2{X: w.B1, Y: 0}, a2D, b2D, apex2D, edgeAv, edgeBv, eps)
	if !ok0 || !ok1 {
		return fmt.Errorf("%w: face %d: extreme ray missed both far edges", ErrDegenerateGeometry, rf)
	}

	if hit0.edge == hit1.edge {
		return e.spawnChild(rf, w, edge, v, apex2D, hit0.edge, hit0.point, hit1.point)
	}
	// Diverging rays: the propagation splits exactly at the shared far
	// vertex v, one child per far edge.
	if err := e.spawnChild(rf, w, edge, v, apex2D, hit0.edge, hit0.point, apex2D); err != nil {
		return err
	}
	return e.spawnChild(rf, w, edge, v, apex2D, hit1.edge, apex2D, hit1.point)
}

// applySaddleCorner seeds a fresh point-source window set rooted at v
// whenever the straight-line unfolded distance through this window is
// not a valid shortest-path assumption at v, i.e. v is a saddle/corner
// vertex (spec §4.3: AngleSum(v) > 2*pi) or lies on the mesh boundary.
// A boundary vertex's incident faces never sum past 2*pi on their own,
// so the boundary case is checked independently rather than folded into
// the AngleSum threshold.
func (e *Engine) applySaddleCorner(v meshgraph.VertexID, w *window.Window, apex2D geomkit.Point2) error {
	candidate := w.DSource + w.Pseudo2D.Dist(apex2D)
	if candidate > e.opts.MaxDistance {
		return nil
	}
	isCorner := e.mesh.AngleSum(v) > 2*math.Pi+1e-9 || e.mesh.IsBoundaryVertex(v)
	if !isCorner {
		e.updateVertexDistance(v, candidate)
		return nil
	}
	if candidate >= e.dist[v] {
		return nil
	}
	e.updateVertexDistance(v, candidate)
	for _, f := range e.mesh.VertexFaces(v) {
		far := e.mesh.OppositeEdge(f, v)
		if far == meshgraph.NoEdge {
			continue
		}
		pseudo2D, err := e.mesh.UnfoldVertex2D(f, far)
		if err != nil {
			return fmt.Errorf("%w: face %d opposite edge %d: %v", ErrDegenerateGeometry, f, far, err)
		}
		length := e.mesh.EdgeLength(far)
		child := window.New(far, f, pseudo2D, candidate, 0, length)
		e.insertAndEnqueue(far, child)
	}
	return nil
}

// spawnChild builds the child window living on childEdge, covering the
// span [hitStart,hitEnd] (in the current face's 2D frame), and re-
// expresses the shared pseudosource in childEdge's own canonical frame
// before inserting it.
func (e *Engine) spawnChild(rf meshgraph.FaceID, w *window.Window, edge meshgraph.Edge, v meshgraph.VertexID, apex2D geomkit.Point2, childEdge meshgraph.EdgeID, hitStart, hitEnd geomkit.Point2) error {
	tr, far, err := e.frameTransform(rf, w.Edge, edge, v, apex2D, childEdge)
	if err != nil {
		return err
	}

	childPseudo := tr.Apply(w.Pseudo2D)
	b0 := tr.Apply(hitStart).X
	b1 := tr.Apply(hitEnd).X
	if b0 > b1 {
		b0, b1 = b1, b0
	}
	b0 = clampf(b0, 0, far.Length)
	b1 = clampf(b1, 0, far.Length)
	if b1-b0 < geomkit.Epsilon(far.Length) {
		return nil
	}

	child := window.New(childEdge, rf, childPseudo, w.DSource, b0, b1)
	e.insertAndEnqueue(childEdge, child)
	return nil
}

// frameTransform builds the isometry from edge e's frame into childEdge's
// own canonical frame. The two frames share exactly two vertices (the
// endpoints of childEdge); the third vertex of rf, known independently in
// both frames via UnfoldVertex2D, disambiguates orientation.
func (e *Engine) frameTransform(rf meshgraph.FaceID, parentEdgeID meshgraph.EdgeID, parentEdge meshgraph.Edge, v meshgraph.VertexID, apex2D geomkit.Point2, childEdgeID meshgraph.EdgeID) (geomkit.Transform2D, meshgraph.Edge, error) {
	child := e.mesh.Edge(childEdgeID)

	// The two shared vertices are whichever of {parentEdge.A, parentEdge.B, v}
	// are child's own endpoints; the third (non-shared) vertex of rf is the
	// "check" point known in both frames.
	var oldP1, oldP2, oldCheck geomkit.Point2
	var sharedA, sharedB meshgraph.VertexID

	if childEdgeID == e.mesh.FindEdge(parentEdge.A, v) {
		sharedA, sharedB = parentEdge.A, v
		oldP1 = geomkit.Point2{X: 0, Y: 0}
		oldP2 = apex2D
		oldCheck = geomkit.Point2{X: parentEdge.Length, Y: 0} // parentEdge.B
	} else {
		sharedA, sharedB = parentEdge.B, v
		oldP1 = geomkit.Point2{X: parentEdge.Length, Y: 0}
		oldP2 = apex2D
		oldCheck = geomkit.Point2{X: 0, Y: 0} // parentEdge.A
	}

	newP1, newP2 := geomkit.Point2{X: 0, Y: 0}, geomkit.Point2{X: child.Length, Y: 0}
	if child.A != sharedA {
		newP1, newP2 = newP2, newP1
	}
	_ = sharedB

	newCheck, err := e.mesh.UnfoldVertex2D(rf, childEdgeID)
	if err != nil {
		return geomkit.Transform2D{}, child, fmt.Errorf("%w: face %d opposite edge %d: %v", ErrDegenerateGeometry, rf, childEdgeID, err)
	}

	eps := geomkit.Epsilon(child.Length)
	return geomkit.BuildTransform2D(oldP1, oldP2, newP1, newP2, oldCheck, newCheck, eps), child, nil
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
