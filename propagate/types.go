package propagate

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/katalvlaran/geodesic/internal/obs"
	"github.com/katalvlaran/geodesic/intervallist"
	"github.com/katalvlaran/geodesic/meshgraph"
	"github.com/katalvlaran/geodesic/window"
)

// Options configures an Engine. Use New(mesh, opts...) rather than
// constructing Options directly.
type Options struct {
	MaxDistance float64
	Targets     map[meshgraph.VertexID]bool
	Log         obs.Logger
}

// Option is a functional option for New, following lvlath's
// Option func(*Options) convention across the repo (dijkstra.Option,
// meshgraph.Option).
type Option func(*Options)

// WithMaxDistance caps propagation: windows whose ShortestDistance
// exceeds max are never expanded. A negative cap is not rejected here —
// functional options cannot fail — but is surfaced as a graceful
// ErrInvalidRequest/ErrBadMaxDistance from New (checked by Seed), per
// spec §7's InvalidRequest policy.
func WithMaxDistance(max float64) Option {
	return func(o *Options) { o.MaxDistance = max }
}

// WithTargets restricts Run's early-termination check to the given
// vertex set: once every target has a finalized distance, Run returns
// without draining the rest of the queue.
func WithTargets(targets []meshgraph.VertexID) Option {
	return func(o *Options) {
		set := make(map[meshgraph.VertexID]bool, len(targets))
		for _, v := range targets {
			set[v] = true
		}
		o.Targets = set
	}
}

// WithLogger attaches a logger; the default is obs.Noop().
func WithLogger(log obs.Logger) Option {
	return func(o *Options) { o.Log = log }
}

func defaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
		Log:         obs.Noop(),
	}
}

// Engine runs best-first MMP propagation over an immutable mesh. The
// zero value is not usable; construct with New.
type Engine struct {
	mesh    *meshgraph.Mesh
	lists   []*intervallist.List // one per mesh edge
	dist    []float64            // one per mesh vertex, best known geodesic distance
	opts    Options
	id      uuid.UUID
	log     obs.Logger
	initErr error // deferred New-time validation failure, surfaced by Seed

	pq        windowPQ
	discarded map[*window.Window]bool
}

// New constructs an Engine over mesh, ready for Seed. A malformed
// MaxDistance or out-of-range target vertex is recorded rather than
// rejected here (New has no error return in this API), and is returned
// by Seed before any propagation work begins.
func New(mesh *meshgraph.Mesh, opts ...Option) *Engine {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	lists := make([]*intervallist.List, mesh.EdgeCount())
	for i := range lists {
		lists[i] = intervallist.NewList(mesh.EdgeLength(meshgraph.EdgeID(i)))
	}

	dist := make([]float64, mesh.VertexCount())
	for i := range dist {
		dist[i] = math.Inf(1)
	}

	var initErr error
	switch {
	case cfg.MaxDistance < 0:
		initErr = fmt.Errorf("%w: %w: %g", ErrInvalidRequest, ErrBadMaxDistance, cfg.MaxDistance)
	case cfg.Targets != nil:
		for t := range cfg.Targets {
			if int(t) >= mesh.VertexCount() {
				initErr = fmt.Errorf("%w: %w: %d", ErrInvalidRequest, ErrTargetOutOfRange, t)
				break
			}
		}
	}

	id := uuid.New()
	return &Engine{
		mesh:      mesh,
		lists:     lists,
		dist:      dist,
		opts:      cfg,
		id:        id,
		log:       cfg.Log.WithRequestID(id),
		initErr:   initErr,
		discarded: make(map[*window.Window]bool),
	}
}

// RequestID returns the engine's logging correlation id.
func (e *Engine) RequestID() uuid.UUID { return e.id }

// VertexDistance returns the current best-known geodesic distance to
// vertex v, or +Inf if v has not been reached (possibly because Run has
// not been called yet, or v is unreachable within MaxDistance).
func (e *Engine) VertexDistance(v meshgraph.VertexID) float64 { return e.dist[v] }

// pushWindow places w onto the priority queue.
func (e *Engine) pushWindow(w *window.Window) {
	heap.Push(&e.pq, w)
}

// popWindow pops the least-distance non-discarded window, or nil if the
// queue has been drained.
func (e *Engine) popWindow() *window.Window {
	for e.pq.Len() > 0 {
		w := heap.Pop(&e.pq).(*window.Window)
		if e.discarded[w] {
			continue
		}
		return w
	}
	return nil
}

// peekWindow returns the least-distance non-discarded window without
// removing it, or nil if the queue has been drained. Discarded entries
// at the head are popped (and permanently dropped, same as popWindow
// would do) so the returned window always reflects the queue's true
// current minimum.
func (e *Engine) peekWindow() *window.Window {
	for e.pq.Len() > 0 {
		w := e.pq[0]
		if e.discarded[w] {
			heap.Pop(&e.pq)
			continue
		}
		return w
	}
	return nil
}

// invalidate marks windows as stale so popWindow skips their (still
// heap-resident) entries.
func (e *Engine) invalidate(ws []*window.Window) {
	for _, w := range ws {
		e.discarded[w] = true
	}
}
