package osmparser

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"lintang/penaltyroute/pkg/datastructure"
	"lintang/penaltyroute/pkg/graph"

	"github.com/k0kubun/go-ansi"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

type OsmParser struct {
	progressOut io.Writer
}

func NewOsmParser() *OsmParser {
	return &OsmParser{progressOut: ansi.NewAnsiStdout()}
}

func (p *OsmParser) SetProgressOutput(w io.Writer) {
	p.progressOut = w
}

func (p *OsmParser) newBar(desc string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(p.progressOut),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

// ParseOSM bikin road network dari file .osm.pbf. pass pertama ambil way yang bisa dilewati mobil,
// pass kedua ambil koordinat node yang dipakai way tsb.
func (p *OsmParser) ParseOSM(ctx context.Context, path string) (*graph.MultiDiGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open osm file: %w", err)
	}
	defer f.Close()

	ways, wayNodes, err := p.scanWays(ctx, f)
	if err != nil {
		return nil, err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek osm file: %w", err)
	}

	coords, err := p.scanNodes(ctx, f, wayNodes)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"ways":  len(ways),
		"nodes": len(coords),
	}).Info("openstreetmap extract parsed")

	g := buildGraph(ways, coords)
	logrus.WithFields(logrus.Fields{
		"nodes": g.NumNodes(),
		"edges": g.NumEdges(),
	}).Info("road network graph built")
	return g, nil
}

func (p *OsmParser) scanWays(ctx context.Context, r io.Reader) ([]osmWay, map[int64]struct{}, error) {
	scanner := osmpbf.New(ctx, r, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipNodes = true
	scanner.SkipRelations = true

	bar := p.newBar("[cyan][1/2][reset] memproses openstreetmap way...")
	ways := []osmWay{}
	wayNodes := make(map[int64]struct{})
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		bar.Add(1)
		tagMap := way.TagMap()
		if !isOsmWayUsedByCars(tagMap) {
			continue
		}

		nodeIDs := make([]int64, len(way.Nodes))
		for i, n := range way.Nodes {
			nodeIDs[i] = int64(n.ID)
			wayNodes[int64(n.ID)] = struct{}{}
		}
		ways = append(ways, newOsmWay(int64(way.ID), nodeIDs, tagMap))
	}
	fmt.Fprintln(p.progressOut, "")

	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("scan osm ways: %w", err)
	}
	return ways, wayNodes, nil
}

func (p *OsmParser) scanNodes(ctx context.Context, r io.Reader, wayNodes map[int64]struct{}) (map[int64]datastructure.Coordinate, error) {
	scanner := osmpbf.New(ctx, r, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipWays = true
	scanner.SkipRelations = true

	bar := p.newBar("[cyan][2/2][reset] memproses openstreetmap node...")
	coords := make(map[int64]datastructure.Coordinate, len(wayNodes))
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if _, used := wayNodes[int64(node.ID)]; !used {
			continue
		}
		coords[int64(node.ID)] = datastructure.NewCoordinate(node.Lat, node.Lon)
		bar.Add(1)
	}
	fmt.Fprintln(p.progressOut, "")

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan osm nodes: %w", err)
	}
	return coords, nil
}
