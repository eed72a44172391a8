package query

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/geodesic/meshgraph"
	"github.com/katalvlaran/geodesic/propagate"
)

// LocalGdistMatrix returns the sparse triples (rows[i], cols[i], vals[i])
// of every reachable, non-self pairwise geodesic distance in the mesh
// (spec §4.6 operation 2): for each vertex v in [0, VertexCount), a
// single-source propagation from v capped at maxDistance records
// (v, u, dist) for every u != v with dist <= maxDistance. The engine is
// rebuilt fresh for every source row, exactly as distance_matrix_of_
// selected_points rebuilds one per selected point.
func LocalGdistMatrix(mesh *meshgraph.Mesh, maxDistance float64, opts ...propagate.Option) (rows, cols []meshgraph.VertexID, vals []float64, err error) {
	if mesh == nil {
		return nil, nil, nil, ErrNilMesh
	}

	for v := meshgraph.VertexID(0); int(v) < mesh.VertexCount(); v++ {
		eng := propagate.New(mesh, append(append([]propagate.Option{}, opts...), propagate.WithMaxDistance(maxDistance))...)
		if err := eng.Seed([]meshgraph.VertexID{v}); err != nil {
			return nil, nil, nil, fmt.Errorf("query: seeding source %d: %w", v, err)
		}
		if err := eng.Run(context.Background()); err != nil {
			return nil, nil, nil, fmt.Errorf("query: propagation from source %d: %w", v, err)
		}
		for u := meshgraph.VertexID(0); int(u) < mesh.VertexCount(); u++ {
			if u == v {
				continue
			}
			d := eng.VertexDistance(u)
			if d <= maxDistance {
				rows = append(rows, v)
				cols = append(cols, u)
				vals = append(vals, d)
			}
		}
	}
	return rows, cols, vals, nil
}

// DistanceMatrixOfSelectedPoints returns the sparse triples of the
// |points|x|points| matrix of pairwise exact geodesic distances among
// exactly the given points (spec §4.6 operation 3): for each p in
// points, an uncapped single-source propagation records distances to
// every other q in points. Diagonal (self-distance) entries are
// omitted, matching spec §6's triple-list contract.
func DistanceMatrixOfSelectedPoints(mesh *meshgraph.Mesh, points []meshgraph.VertexID, opts ...propagate.Option) (rows, cols []meshgraph.VertexID, vals []float64, err error) {
	if mesh == nil {
		return nil, nil, nil, ErrNilMesh
	}

	for _, p := range points {
		eng := propagate.New(mesh, append(append([]propagate.Option{}, opts...), propagate.WithTargets(points))...)
		if err := eng.Seed([]meshgraph.VertexID{p}); err != nil {
			return nil, nil, nil, fmt.Errorf("query: seeding source %d: %w", p, err)
		}
		if err := eng.Run(context.Background()); err != nil {
			return nil, nil, nil, fmt.Errorf("query: propagation from source %d: %w", p, err)
		}
		for _, q := range points {
			if q == p {
				continue
			}
			rows = append(rows, p)
			cols = append(cols, q)
			vals = append(vals, eng.VertexDistance(q))
		}
	}
	return rows, cols, vals, nil
}

// Symmetrize averages (row,col) and (col,row) entries of a sparse
// triple list produced by LocalGdistMatrix or
// DistanceMatrixOfSelectedPoints, reconciling the small asymmetry that
// independent single-source propagation runs can introduce near
// numerically close interval-list ties (spec §4.6's note that neither
// operation's output is guaranteed bit-exact symmetric). Entries with
// no (col,row) counterpart (e.g. one side exceeded a cap the other
// didn't) are passed through unchanged.
func Symmetrize(rows, cols []meshgraph.VertexID, vals []float64) (outRows, outCols []meshgraph.VertexID, outVals []float64) {
	type key struct{ a, b meshgraph.VertexID }
	byPair := make(map[key]float64, len(vals))
	for i := range vals {
		byPair[key{rows[i], cols[i]}] = vals[i]
	}

	seen := make(map[key]bool, len(vals))
	for i := range vals {
		a, b := rows[i], cols[i]
		if seen[key{a, b}] {
			continue
		}
		seen[key{a, b}] = true
		seen[key{b, a}] = true

		v := vals[i]
		if rev, ok := byPair[key{b, a}]; ok {
			v = (v + rev) / 2
			outRows = append(outRows, a, b)
			outCols = append(outCols, b, a)
			outVals = append(outVals, v, v)
			continue
		}
		outRows = append(outRows, a)
		outCols = append(outCols, b)
		outVals = append(outVals, v)
	}
	return outRows, outCols, outVals
}

// ToDense assembles a sparse triple list (as returned by
// LocalGdistMatrix or DistanceMatrixOfSelectedPoints) into a gonum
// mat.Dense of the given index set, for callers that want a grid rather
// than the canonical sparse form spec §6 mandates (cmd/geodesic prints
// the sparse triples directly and does not call ToDense). Entries absent from the triples (beyond
// any cap, or the omitted diagonal) are left at 0.
func ToDense(index []meshgraph.VertexID, rows, cols []meshgraph.VertexID, vals []float64) *mat.Dense {
	pos := make(map[meshgraph.VertexID]int, len(index))
	for i, v := range index {
		pos[v] = i
	}

	out := mat.NewDense(len(index), len(index), nil)
	for i := range vals {
		r, okR := pos[rows[i]]
		c, okC := pos[cols[i]]
		if okR && okC {
			out.Set(r, c, vals[i])
		}
	}
	return out
}
