package obs

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Level mirrors the subset of zerolog's levels the engine actually emits.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelDisabled
)

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

// Logger wraps a zerolog.Logger so callers never import zerolog directly.
type Logger struct {
	z zerolog.Logger
}

// New builds a Logger writing RFC3339-timestamped JSON to w (os.Stderr if
// w is nil) at the given level.
func New(level Level, w io.Writer) Logger {
	if w == nil {
		w = os.Stderr
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	z := zerolog.New(w).Level(level.zerolog()).With().Timestamp().Logger()
	return Logger{z: z}
}

// Noop returns a Logger that discards everything, used as a safe default
// when no logger is configured.
func Noop() Logger { return New(LevelDisabled, io.Discard) }

// WithRequestID returns a child logger tagging every event with id.
func (l Logger) WithRequestID(id uuid.UUID) Logger {
	return Logger{z: l.z.With().Str("request_id", id.String()).Logger()}
}

// WithEdge returns a child logger tagging every event with the given edge
// index, used while logging per-edge propagation events.
func (l Logger) WithEdge(edge uint32) Logger {
	return Logger{z: l.z.With().Uint32("edge", edge).Logger()}
}

func (l Logger) Debug() *zerolog.Event { return l.z.Debug() }
func (l Logger) Info() *zerolog.Event  { return l.z.Info() }
func (l Logger) Warn() *zerolog.Event  { return l.z.Warn() }
func (l Logger) Error() *zerolog.Event { return l.z.Error() }

type ctxKey struct{}

// WithContext returns a context carrying l, retrievable with FromContext.
func WithContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the Logger stored in ctx, or a no-op Logger if none
// was attached.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(ctxKey{}).(Logger); ok {
		return l
	}
	return Noop()
}
