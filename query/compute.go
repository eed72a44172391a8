package query

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/geodesic/meshgraph"
	"github.com/katalvlaran/geodesic/propagate"
)

// ComputeGdist returns, for every vertex in targets (in the same order,
// duplicates preserved), its exact geodesic distance to the nearest
// vertex in sources (spec §4.6 operation 1, spec §6's "array of
// doubles, length |targets|" contract). A target unreachable within the
// engine's configured MaxDistance (see propagate.WithMaxDistance) comes
// back as +Inf; pass a finite propagate.WithMaxDistance to cap it at
// that value instead.
func ComputeGdist(mesh *meshgraph.Mesh, sources, targets []meshgraph.VertexID, opts ...propagate.Option) ([]float64, error) {
	if mesh == nil {
		return nil, ErrNilMesh
	}

	// WithTargets is only added when there is an actual target set: an
	// empty (but non-nil) targets slice would otherwise seed
	// Options.Targets with an empty, non-nil map, making
	// allTargetsReached trivially true and short-circuiting Run before
	// any propagation happens.
	if len(targets) > 0 {
		opts = append(append([]propagate.Option{}, opts...), propagate.WithTargets(targets))
	}
	eng := propagate.New(mesh, opts...)
	if err := eng.Seed(sources); err != nil {
		return nil, fmt.Errorf("query: seeding sources: %w", err)
	}
	if err := eng.Run(context.Background()); err != nil {
		return nil, fmt.Errorf("query: propagation: %w", err)
	}

	cfg := propagate.Options{MaxDistance: math.Inf(1)}
	for _, opt := range opts {
		opt(&cfg)
	}

	out := make([]float64, len(targets))
	for i, t := range targets {
		out[i] = eng.VertexDistance(t)
		if out[i] > cfg.MaxDistance {
			out[i] = cfg.MaxDistance
		}
	}
	return out, nil
}

// ComputeGdistFromOrigin is the single-source convenience form of
// ComputeGdist, resolving spec.md's Open Question (b): should a
// dedicated single-source entry point exist alongside the general
// multi-source one. It does, because the common case (one origin, many
// targets) shouldn't require callers to wrap origin in a slice.
func ComputeGdistFromOrigin(mesh *meshgraph.Mesh, origin meshgraph.VertexID, targets []meshgraph.VertexID, opts ...propagate.Option) ([]float64, error) {
	return ComputeGdist(mesh, []meshgraph.VertexID{origin}, targets, opts...)
}

// ComputeFullDistanceFieldFromZero dumps the exact geodesic distance
// from vertex 0 to every vertex in the mesh. It is spec §4.6 operation
// 1's documented "sources and targets both empty" edge case, made an
// explicit call rather than a behavior ComputeGdist falls into when
// handed empty slices (spec.md §9 Open Question (a): the ambiguous
// "both empty" case should be an explicit mode, never a silent
// default). ComputeGdist itself rejects an empty source list outright
// via propagate.ErrNoSources.
func ComputeFullDistanceFieldFromZero(mesh *meshgraph.Mesh, opts ...propagate.Option) ([]float64, error) {
	if mesh == nil {
		return nil, ErrNilMesh
	}

	all := make([]meshgraph.VertexID, mesh.VertexCount())
	for i := range all {
		all[i] = meshgraph.VertexID(i)
	}
	return ComputeGdistFromOrigin(mesh, 0, all, opts...)
}
