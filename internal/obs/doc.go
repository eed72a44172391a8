// Package obs is the structured-logging facade shared by propagate, query
// and cmd/geodesic.
//
// It wraps github.com/rs/zerolog rather than exposing it directly so that
// every package logs through the same handful of field names (request_id,
// edge, vertex, window_generation) instead of each caller inventing its
// own vocabulary.
//
// Quick example:
//
//	log := obs.New(obs.LevelInfo, os.Stderr)
//	log = log.WithRequestID(uuid.New())
//	log.Info().Msg("propagation started")
package obs
