package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/geodesic/ingest"
	"github.com/katalvlaran/geodesic/meshgraph"
)

func loadMesh(path string, oneIndexed bool) (*meshgraph.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mesh file: %w", err)
	}
	defer f.Close()

	var ingestOpts []ingest.Option
	if oneIndexed {
		ingestOpts = append(ingestOpts, ingest.WithOneIndexed())
	}
	vertices, triangles, err := ingest.ParseFlatMeshFile(f, ingestOpts...)
	if err != nil {
		return nil, fmt.Errorf("parsing mesh file: %w", err)
	}

	var buildOpts []meshgraph.Option
	mesh, err := meshgraph.Build(vertices, triangles, buildOpts...)
	if err != nil {
		return nil, fmt.Errorf("building mesh graph: %w", err)
	}
	return mesh, nil
}
