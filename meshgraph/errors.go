package meshgraph

import "errors"

// ErrInvalidMesh is the sentinel returned by Build when the input fails
// the structural checks of spec §4.2: an out-of-range vertex index, an
// edge shared by more than two faces, or a face with coincident
// vertices within tolerance. Callers should use errors.Is against this
// sentinel; the wrapped message names the offending entity.
var ErrInvalidMesh = errors.New("meshgraph: invalid mesh")
