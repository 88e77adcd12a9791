package osmparser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lintang/penaltyroute/pkg/graph"
)

var ErrUnsupportedFormat = errors.New("unsupported road network format (want .osm.pbf, .graphml or .json)")

// LoadRoadNetwork load road network sesuai ekstensi file.
func LoadRoadNetwork(ctx context.Context, path string) (*graph.MultiDiGraph, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pbf":
		return NewOsmParser().ParseOSM(ctx, path)
	case ".graphml":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open graphml: %w", err)
		}
		defer f.Close()
		return graph.LoadGraphML(f)
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open node-link json: %w", err)
		}
		defer f.Close()
		return graph.LoadNodeLinkJSON(f)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}
