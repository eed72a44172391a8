package propagate

import (
	"fmt"

	"github.com/katalvlaran/geodesic/meshgraph"
	"github.com/katalvlaran/geodesic/window"
)

// Seed initializes the engine from one or more source vertices (spec
// §4.5's init step): for each source s and each face f incident to s,
// an initial window is unfolded across the edge of f opposite s,
// covering that edge's full length with pseudosource s itself.
func (e *Engine) Seed(sources []meshgraph.VertexID) error {
	if e.initErr != nil {
		return e.initErr
	}
	if len(sources) == 0 {
		return ErrNoSources
	}
	for _, s := range sources {
		if int(s) >= e.mesh.VertexCount() {
			return fmt.Errorf("%w: %w: %d", ErrInvalidRequest, ErrSourceOutOfRange, s)
		}
	}

	for _, s := range sources {
		e.updateVertexDistance(s, 0)
		for _, f := range e.mesh.VertexFaces(s) {
			edge := e.mesh.OppositeEdge(f, s)
			if edge == meshgraph.NoEdge {
				continue
			}
			if err := e.seedFace(s, f, edge); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Engine) seedFace(s meshgraph.VertexID, f meshgraph.FaceID, edge meshgraph.EdgeID) error {
	pseudo2D, err := e.mesh.UnfoldVertex2D(f, edge)
	if err != nil {
		return fmt.Errorf("%w: face %d opposite edge %d: %v", ErrDegenerateGeometry, f, edge, err)
	}
	length := e.mesh.EdgeLength(edge)
	w := window.New(edge, f, pseudo2D, 0, 0, length)
	e.insertAndEnqueue(edge, w)
	return nil
}
