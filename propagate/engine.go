package propagate

import (
	"context"
)

// Run drains the priority queue best-first (spec §4.5's process loop),
// expanding each popped window in turn, until one of:
//   - the queue is empty,
//   - the next window's ShortestDistance exceeds Options.MaxDistance,
//   - ctx is cancelled,
//   - every target vertex (Options.Targets) has a finalized distance.
//
// A geometry degeneracy encountered while expanding a window (a face
// that will not unfold, or rays that strike neither candidate far edge)
// is fatal to the request: Run aborts immediately and returns the
// wrapped ErrDegenerateGeometry rather than silently under-propagating.
//
// Windows retired by a later Insert while still queued are skipped
// (lazy deletion via Engine.discarded), mirroring dijkstra.runner's
// visited-map check on pop.
func (e *Engine) Run(ctx context.Context) error {
	e.log.Info().Msg("propagation started")
	popped := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if e.allTargetsReached() {
			break
		}

		w := e.popWindow()
		if w == nil {
			break
		}
		if w.ShortestDistance() > e.opts.MaxDistance {
			break
		}

		popped++
		if err := e.propagateOne(w); err != nil {
			e.log.Error().Err(err).Msg("propagation aborted")
			return err
		}
	}
	e.log.Info().Int("windows_popped", popped).Msg("propagation finished")
	return nil
}
