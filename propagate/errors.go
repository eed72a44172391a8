package propagate

import "errors"

var (
	// ErrNoSources is returned by Seed when given an empty source list.
	ErrNoSources = errors.New("propagate: at least one source vertex is required")

	// ErrInvalidRequest is the umbrella sentinel for a malformed request
	// (spec §7): a source or target vertex index out of range, or a
	// negative MaxDistance cap. Wrapped alongside the more specific
	// sentinel below so callers can match on either.
	ErrInvalidRequest = errors.New("propagate: invalid request")

	// ErrSourceOutOfRange is returned by Seed when a source vertex index
	// does not exist in the mesh.
	ErrSourceOutOfRange = errors.New("propagate: source vertex out of range")

	// ErrTargetOutOfRange is returned by New (surfaced by Seed) when a
	// vertex passed to WithTargets does not exist in the mesh.
	ErrTargetOutOfRange = errors.New("propagate: target vertex out of range")

	// ErrDegenerateGeometry is fatal to the whole request (spec §4.5,
	// §7): returned when a face cannot be unfolded or a window's rays
	// fail to strike either candidate far edge within tolerance.
	ErrDegenerateGeometry = errors.New("propagate: degenerate face geometry")

	// ErrBadMaxDistance is returned (via New/Seed) for a negative
	// MaxDistance cap.
	ErrBadMaxDistance = errors.New("propagate: MaxDistance must be non-negative")
)
