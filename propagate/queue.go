package propagate

import (
	"github.com/katalvlaran/geodesic/window"
)

// windowPQ is a min-heap of *window.Window ordered by ShortestDistance,
// the same lazy-decrease-key pattern lvlath's dijkstra.nodePQ uses for
// scalar distances: intervallist.Insert never mutates a live *Window in
// place, it replaces it, so stale heap entries are identified by engine
// discard-tracking rather than by a visited set keyed on vertex identity.
type windowPQ []*window.Window

func (pq windowPQ) Len() int { return len(pq) }

// Less orders primarily by ShortestDistance; ties are broken by Edge
// then B0 (spec §5's deterministic tie-break), so that two runs over
// identical input pop windows in the same order even when several carry
// the same priority key.
func (pq windowPQ) Less(i, j int) bool {
	di, dj := pq[i].ShortestDistance(), pq[j].ShortestDistance()
	if di != dj {
		return di < dj
	}
	if pq[i].Edge != pq[j].Edge {
		return pq[i].Edge < pq[j].Edge
	}
	return pq[i].B0 < pq[j].B0
}

func (pq windowPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *windowPQ) Push(x interface{}) { *pq = append(*pq, x.(*window.Window)) }

func (pq *windowPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
