package query

import "errors"

// ErrNilMesh is returned when a nil *meshgraph.Mesh is passed to any
// query function.
var ErrNilMesh = errors.New("query: mesh is nil")
