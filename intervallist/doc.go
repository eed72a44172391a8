// Package intervallist maintains, for a single mesh edge, the ordered,
// non-overlapping set of live windows that cover (a subset of) that
// edge — spec §4.4, the core geometric subroutine of MMP propagation.
//
// Each edge's List is backed by a github.com/google/btree BTreeG keyed
// by parameter, the same "reach for the library data structure" posture
// lvlath's dijkstra package takes with container/heap instead of a
// hand-rolled queue. The overlap run for a new window is found by
// ascending from the edge's first live window and stopping at the first
// one that starts past the new window's end.
package intervallist
