package intervallist

import (
	"sort"

	"github.com/katalvlaran/geodesic/geomkit"
	"github.com/katalvlaran/geodesic/window"
)

// piece is a contiguous sub-interval of the insertion range [newW.B0,
// newW.B1] (or a stub outside it) together with whichever window
// currently owns it.
type piece struct {
	start, end float64
	owner      *window.Window
}

// Insert merges newW into the edge's live window list, resolving any
// overlap by pointwise minimum of the two windows' distance functions
// (spec §4.4). It returns every window that is now live and must be
// (re)pushed onto the priority queue (surviving), and every window
// whose tree entry was removed and whose priority-queue reference is
// therefore stale (invalidated).
//
// Complexity: O(k log k + k) where k is the number of existing windows
// overlapping newW's interval — empirically a small constant (spec §5).
func (l *List) Insert(newW *window.Window) (surviving, invalidated []*window.Window) {
	epsLen := geomkit.Epsilon(l.edgeLen)

	overlapping := l.overlapping(newW.B0, newW.B1, epsLen)
	if len(overlapping) == 0 {
		l.place(newW)
		return []*window.Window{newW}, nil
	}

	pieces := l.resolve(newW, overlapping, epsLen)

	for _, old := range overlapping {
		l.tree.Delete(old)
		invalidated = append(invalidated, old)
	}

	surviving = make([]*window.Window, 0, len(pieces))
	for _, p := range pieces {
		if p.end-p.start < epsLen {
			continue
		}
		fresh := p.owner.WithInterval(p.start, p.end)
		fresh.Generation = l.nextGeneration()
		l.place(fresh)
		surviving = append(surviving, fresh)
	}
	return surviving, invalidated
}

// place inserts w into the backing tree.
func (l *List) place(w *window.Window) {
	l.tree.ReplaceOrInsert(w)
}

// overlapping returns every live window whose interval intersects
// [b0,b1] beyond epsLen, ordered by B0.
func (l *List) overlapping(b0, b1, epsLen float64) []*window.Window {
	var out []*window.Window
	l.tree.Ascend(func(w *window.Window) bool {
		if w.B0 >= b1-epsLen {
			return false // tree is ordered by B0; nothing further can overlap
		}
		if w.B1 > b0+epsLen {
			out = append(out, w)
		}
		return true
	})
	return out
}

// resolve computes the final, non-overlapping set of pieces covering
// the union of newW's interval and every overlapping old window's
// interval, applying spec §4.4's pointwise-minimum rule within the
// contested region.
func (l *List) resolve(newW *window.Window, overlapping []*window.Window, epsLen float64) []piece {
	var pieces []piece

	// Stubs: the parts of each old window that lie strictly outside
	// newW's interval are untouched by the merge.
	for _, old := range overlapping {
		if old.B0 < newW.B0-epsLen {
			pieces = append(pieces, piece{start: old.B0, end: min(old.B1, newW.B0), owner: old})
		}
		if old.B1 > newW.B1+epsLen {
			pieces = append(pieces, piece{start: max(old.B0, newW.B1), end: old.B1, owner: old})
		}
	}

	// Breakpoints across the contested range [newW.B0, newW.B1]: the
	// clamped boundaries of every overlapping old window, plus every
	// valid crossing point between that old window and newW.
	breaks := []float64{newW.B0, newW.B1}
	for _, old := range overlapping {
		lo := clamp(old.B0, newW.B0, newW.B1)
		hi := clamp(old.B1, newW.B0, newW.B1)
		breaks = append(breaks, lo, hi)
		for _, t := range SolveCrossing(old, newW) {
			if t > lo+epsLen && t < hi-epsLen {
				breaks = append(breaks, t)
			}
		}
	}
	breaks = dedupeSorted(breaks, epsLen)

	for i := 0; i+1 < len(breaks); i++ {
		s0, s1 := breaks[i], breaks[i+1]
		if s1-s0 < epsLen {
			continue
		}
		mid := (s0 + s1) / 2
		owner := newW
		for _, old := range overlapping {
			if mid >= old.B0-epsLen && mid <= old.B1+epsLen {
				owner = pickWinner(old, newW, mid)
				break
			}
		}
		pieces = append(pieces, piece{start: s0, end: s1, owner: owner})
	}

	sort.Slice(pieces, func(i, j int) bool { return pieces[i].start < pieces[j].start })
	return mergeAdjacent(pieces, epsLen)
}

// pickWinner returns whichever of old/newW has the smaller distance
// function value at t, applying spec §4.4's tie-break: smaller DSource
// wins, then (same edge, so) smaller B0.
func pickWinner(old, newW *window.Window, t float64) *window.Window {
	do, dn := old.DistanceAt(t), newW.DistanceAt(t)
	epsD := geomkit.DistEpsilon(do, dn)
	if do < dn-epsD {
		return old
	}
	if dn < do-epsD {
		return newW
	}
	if old.DSource != newW.DSource {
		if old.DSource < newW.DSource {
			return old
		}
		return newW
	}
	if old.B0 <= newW.B0 {
		return old
	}
	return newW
}

func mergeAdjacent(pieces []piece, epsLen float64) []piece {
	if len(pieces) == 0 {
		return nil
	}
	out := pieces[:1]
	for _, p := range pieces[1:] {
		last := &out[len(out)-1]
		if last.owner == p.owner && p.start-last.end < epsLen {
			last.end = p.end
			continue
		}
		out = append(out, p)
	}
	return out
}

func dedupeSorted(vs []float64, epsLen float64) []float64 {
	sort.Float64s(vs)
	out := vs[:0:0]
	for _, v := range vs {
		if len(out) == 0 || v-out[len(out)-1] > epsLen {
			out = append(out, v)
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
