// Package geodesic computes exact single-source and multi-source
// geodesic distances on triangulated surface meshes using the
// Mitchell-Mount-Papadimitriou (1987) algorithm.
//
// Under the hood, everything is organized into narrow, independently
// documented subpackages:
//
//	geomkit/      — 3D vector arithmetic, unfolding, 2D line intersection
//	meshgraph/    — immutable vertex/face/edge graph and its 2D frames
//	window/       — the wavefront fragment data model
//	intervallist/ — per-edge ordered window list and overlap resolution
//	propagate/    — the best-first propagation engine
//	query/        — compute_gdist / local_gdist_matrix façade
//	ingest/       — flat mesh file parsing
//	cmd/geodesic/ — command-line front-end
//
// Quick example:
//
//	mesh, _ := meshgraph.Build(vertices, triangles)
//	d, err := query.ComputeGdist(mesh, []meshgraph.VertexID{0}, []meshgraph.VertexID{7})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(d[0]) // distance to target index 0, i.e. vertex 7
package geodesic
