// Package query is the public façade over propagate.Engine (spec §4.6):
// compute_gdist, local_gdist_matrix and distance_matrix_of_selected_points,
// plus the supplemented ComputeGdistFromOrigin (spec's Open Question b).
//
// Quick example:
//
//	d, err := query.ComputeGdist(mesh, []meshgraph.VertexID{0}, []meshgraph.VertexID{7})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(d[0]) // distance to target index 0, i.e. vertex 7
package query
