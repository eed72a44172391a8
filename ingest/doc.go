// Package ingest adapts external mesh file formats into meshgraph.Build
// inputs. It is ambient plumbing the distilled spec doesn't name but any
// complete command-line tool needs: something has to turn a file on disk
// into vertices and triangles.
//
// ParseFlatMeshFile reads the flat layout used by this repo's testdata
// fixtures (ported from original_source's numpy-loadtxt convention: one
// header line, then V vertex rows, then F triangle rows, everything
// whitespace-separated):
//
//	V F
//	x0 y0 z0
//	...
//	x(V-1) y(V-1) z(V-1)
//	a0 b0 c0
//	...
//	a(F-1) b(F-1) c(F-1)
//
// Triangle indices are 0-indexed by default; pass WithOneIndexed to
// parse 1-indexed triangle rows.
package ingest
