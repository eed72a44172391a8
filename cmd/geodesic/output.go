package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/geodesic/internal/obs"
	"github.com/katalvlaran/geodesic/meshgraph"
	"github.com/katalvlaran/geodesic/propagate"
	"github.com/katalvlaran/geodesic/query"
)

func runCompute(out io.Writer, log obs.Logger, mesh *meshgraph.Mesh, sources, targets []meshgraph.VertexID, maxDistance float64) error {
	d, err := query.ComputeGdist(mesh, sources, targets, propagate.WithMaxDistance(maxDistance), propagate.WithLogger(log))
	if err != nil {
		return err
	}
	for i, t := range targets {
		fmt.Fprintf(out, "%d\t%g\n", t, d[i])
	}
	return nil
}

// runMatrix prints spec §4.6 operation 2's all-vertices sparse triples:
// every reachable (row, col, dist) pair within maxDistance, one line
// per triple, diagonal omitted.
func runMatrix(out io.Writer, log obs.Logger, mesh *meshgraph.Mesh, maxDistance float64) error {
	rows, cols, vals, err := query.LocalGdistMatrix(mesh, maxDistance, propagate.WithLogger(log))
	if err != nil {
		return err
	}
	return writeTriples(out, rows, cols, vals)
}

// runPointsMatrix prints spec §4.6 operation 3's selected-points sparse
// triples: pairwise distances among exactly the given points.
func runPointsMatrix(out io.Writer, log obs.Logger, mesh *meshgraph.Mesh, points []meshgraph.VertexID) error {
	rows, cols, vals, err := query.DistanceMatrixOfSelectedPoints(mesh, points, propagate.WithLogger(log))
	if err != nil {
		return err
	}
	return writeTriples(out, rows, cols, vals)
}

// runFullField prints spec §4.6 operation 1's documented "sources and
// targets both empty" edge case: the full per-vertex distance field
// from vertex 0, one line per vertex.
func runFullField(out io.Writer, log obs.Logger, mesh *meshgraph.Mesh, maxDistance float64) error {
	d, err := query.ComputeFullDistanceFieldFromZero(mesh, propagate.WithMaxDistance(maxDistance), propagate.WithLogger(log))
	if err != nil {
		return err
	}
	for v, dist := range d {
		fmt.Fprintf(out, "%d\t%g\n", v, dist)
	}
	return nil
}

func writeTriples(out io.Writer, rows, cols []meshgraph.VertexID, vals []float64) error {
	for i := range vals {
		fmt.Fprintf(out, "%d\t%d\t%g\n", rows[i], cols[i], vals[i])
	}
	return nil
}
