package ingest

import "errors"

// ErrMalformedHeader is returned when the first line does not contain
// exactly two non-negative integers (vertex count, face count).
var ErrMalformedHeader = errors.New("ingest: malformed header line")

// ErrTruncatedFile is returned when the file ends before the header's
// declared vertex/face counts are satisfied.
var ErrTruncatedFile = errors.New("ingest: file truncated before declared vertex/face counts")

// ErrMalformedRow is returned when a vertex or triangle row does not
// parse as the expected number of whitespace-separated values.
var ErrMalformedRow = errors.New("ingest: malformed data row")
