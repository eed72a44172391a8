// Package window implements the Window type: a live wavefront fragment
// on one mesh edge, carrying its pseudosource and the distance function
// that radiates from it (spec §3).
//
// A Window is a plain value type; ownership and lifecycle (queued,
// popped, propagated, discarded, invalidated) are managed by
// intervallist.List and propagate.Engine, not by this package.
package window
