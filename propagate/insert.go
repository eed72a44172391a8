package propagate

import (
	"math"

	"github.com/katalvlaran/geodesic/geomkit"
	"github.com/katalvlaran/geodesic/meshgraph"
	"github.com/katalvlaran/geodesic/window"
)

// insertAndEnqueue merges w into edge's interval list, retires whatever
// it shadows, pushes every surviving piece onto the priority queue, and
// updates the endpoint vertex distances the surviving pieces imply.
func (e *Engine) insertAndEnqueue(edge meshgraph.EdgeID, w *window.Window) {
	if w.ShortestDistance() > e.opts.MaxDistance {
		return // mirrors dijkstra.relax's pre-push MaxDistance check
	}

	surviving, invalidated := e.lists[edge].Insert(w)
	e.invalidate(invalidated)

	ed := e.mesh.Edge(edge)
	epsLen := geomkit.Epsilon(ed.Length)
	for _, s := range surviving {
		e.pushWindow(s)
		if s.B0 <= epsLen {
			e.updateVertexDistance(ed.A, s.D0)
		}
		if s.B1 >= ed.Length-epsLen {
			e.updateVertexDistance(ed.B, s.D1)
		}
	}
}

// updateVertexDistance records candidate as v's distance if it improves
// on the current best-known value.
func (e *Engine) updateVertexDistance(v meshgraph.VertexID, candidate float64) {
	if candidate < e.dist[v] {
		e.dist[v] = candidate
	}
}

// allTargetsReached reports whether Run may stop early (spec §4.5's
// early-termination mode): every v in Options.Targets must have
// dist[v] <= the current queue head's ShortestDistance, since that
// head value lower-bounds every distance improvement the rest of the
// queue could still produce. A target whose distance was only just
// written by a window insertion (an upper bound, not yet necessarily
// optimal — see propagate.go's pseudosource-candidate note) does not
// satisfy this until no live window could possibly beat it.
func (e *Engine) allTargetsReached() bool {
	if e.opts.Targets == nil {
		return false
	}
	headDist := math.Inf(1)
	if head := e.peekWindow(); head != nil {
		headDist = head.ShortestDistance()
	}
	for v := range e.opts.Targets {
		if e.dist[v] > headDist {
			return false
		}
	}
	return true
}
