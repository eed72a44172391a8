package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/geodesic/geomkit"
	"github.com/katalvlaran/geodesic/meshgraph"
)

// Option configures ParseFlatMeshFile.
type Option func(*config)

type config struct {
	oneIndexed bool
}

// WithOneIndexed parses triangle rows as 1-indexed, subtracting 1 from
// every vertex index before returning them.
func WithOneIndexed() Option {
	return func(c *config) { c.oneIndexed = true }
}

// ParseFlatMeshFile reads the header + vertices + triangles layout
// documented in doc.go from r and returns vertices/triangles ready for
// meshgraph.Build.
func ParseFlatMeshFile(r io.Reader, opts ...Option) ([]geomkit.Point3, []meshgraph.Tri, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		return nil, nil, fmt.Errorf("%w: empty file", ErrMalformedHeader)
	}
	numVertices, numFaces, err := parseHeader(sc.Text())
	if err != nil {
		return nil, nil, err
	}

	vertices := make([]geomkit.Point3, 0, numVertices)
	for i := 0; i < numVertices; i++ {
		if !sc.Scan() {
			return nil, nil, fmt.Errorf("%w: expected %d vertex rows, got %d", ErrTruncatedFile, numVertices, i)
		}
		p, err := parseVertexRow(sc.Text())
		if err != nil {
			return nil, nil, err
		}
		vertices = append(vertices, p)
	}

	triangles := make([]meshgraph.Tri, 0, numFaces)
	for i := 0; i < numFaces; i++ {
		if !sc.Scan() {
			return nil, nil, fmt.Errorf("%w: expected %d triangle rows, got %d", ErrTruncatedFile, numFaces, i)
		}
		tri, err := parseTriangleRow(sc.Text(), cfg.oneIndexed)
		if err != nil {
			return nil, nil, err
		}
		triangles = append(triangles, tri)
	}

	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("ingest: scanning file: %w", err)
	}
	return vertices, triangles, nil
}

func parseHeader(line string) (numVertices, numFaces int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: want 2 fields, got %d", ErrMalformedHeader, len(fields))
	}
	numVertices, err1 := strconv.Atoi(fields[0])
	numFaces, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil || numVertices < 0 || numFaces < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	return numVertices, numFaces, nil
}

func parseVertexRow(line string) (geomkit.Point3, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return geomkit.Point3{}, fmt.Errorf("%w: vertex row %q", ErrMalformedRow, line)
	}
	var xyz [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geomkit.Point3{}, fmt.Errorf("%w: vertex row %q: %v", ErrMalformedRow, line, err)
		}
		xyz[i] = v
	}
	return geomkit.Point3{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

func parseTriangleRow(line string, oneIndexed bool) (meshgraph.Tri, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return meshgraph.Tri{}, fmt.Errorf("%w: triangle row %q", ErrMalformedRow, line)
	}
	var idx [3]meshgraph.VertexID
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return meshgraph.Tri{}, fmt.Errorf("%w: triangle row %q: %v", ErrMalformedRow, line, err)
		}
		if oneIndexed {
			v--
		}
		idx[i] = meshgraph.VertexID(v)
	}
	return meshgraph.Tri{V: idx}, nil
}
