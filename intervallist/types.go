package intervallist

import (
	"github.com/google/btree"

	"github.com/katalvlaran/geodesic/window"
)

// degree is the btree branching factor. 32 matches google/btree's own
// documented sweet spot for in-memory workloads of this size.
const degree = 32

// List is the ordered, non-overlapping set of live windows on one mesh
// edge. The zero value is not usable; construct with NewList.
type List struct {
	tree    *btree.BTreeG[*window.Window]
	nextGen uint64
	edgeLen float64
}

// windowLess orders windows by B0, breaking ties by Generation so that
// two windows with (numerically) identical start parameters still
// compare consistently inside the tree.
func windowLess(a, b *window.Window) bool {
	if a.B0 != b.B0 {
		return a.B0 < b.B0
	}
	return a.Generation < b.Generation
}

// NewList constructs an empty interval list for an edge of the given
// length, used to derive the parameter/distance tolerances of spec
// §4.4's numeric policy.
func NewList(edgeLen float64) *List {
	return &List{tree: btree.NewG(degree, windowLess), edgeLen: edgeLen}
}

// Len returns the number of live windows currently on the edge.
func (l *List) Len() int { return l.tree.Len() }

// Windows returns every live window on the edge, ordered by B0. Intended
// for diagnostics and tests; propagate.Engine should prefer Insert's
// return values over re-scanning the list.
func (l *List) Windows() []*window.Window {
	out := make([]*window.Window, 0, l.tree.Len())
	l.tree.Ascend(func(w *window.Window) bool {
		out = append(out, w)
		return true
	})
	return out
}

// nextGeneration returns a fresh, monotonically increasing generation
// tag for this edge, assigned to every piece Insert re-creates so that
// windowLess orders pieces with equal B0 consistently. Stale
// priority-queue references are reported through Insert's invalidated
// return value, not through this tag.
func (l *List) nextGeneration() uint64 {
	l.nextGen++
	return l.nextGen
}
