// Package propagate implements the best-first wavefront propagation
// engine (spec §4.5): a priority queue of live windows, a per-edge
// intervallist.List for overlap resolution, and the propagation/
// saddle-corner rule (spec §4.3) that turns one window into its
// children on the opposite face.
//
// Engine mirrors lvlath/dijkstra's runner shape (init/process/relax)
// generalized from a graph of scalar edge weights to a graph of
// triangulated faces and geometric windows: Seed plays init's role,
// Run plays process's, and propagateOne plays relax's.
//
// Quick example:
//
//	eng := propagate.New(mesh, propagate.WithMaxDistance(5))
//	eng.Seed([]meshgraph.VertexID{0})
//	if err := eng.Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//	d := eng.VertexDistance(42)
package propagate
