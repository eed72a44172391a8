// Package meshgraph builds and queries the immutable triangulated-surface
// graph that the propagation engine runs on: deduplicated vertices,
// triangles, and edges, full adjacency (vertex↔edge, vertex↔face,
// edge↔face), and the per-edge canonical 2D unfolding frame that every
// window on that edge shares.
//
// A Mesh is built once per request via Build and never mutated again —
// every propagate.Engine that runs against it may do so concurrently,
// since all Mesh methods are read-only (spec §5: "the mesh is read-only
// and may be shared by simultaneous requests").
//
// Vertex, face, and edge identifiers are unsigned 32-bit indices
// ([0,V), [0,F), [0,E) respectively), settling the open question in
// spec §9(a) in favor of a single unsigned representation plus the
// WithOneIndexed build option for 1-indexed triangle inputs.
package meshgraph
