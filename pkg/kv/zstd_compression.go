package kv

import (
	"lintang/penaltyroute/pkg/concurrent"
	"lintang/penaltyroute/pkg/datastructure"
	"lintang/penaltyroute/pkg/graph"

	"github.com/DataDog/zstd"
	"github.com/kelindar/binary"
)

type snapshotNode struct {
	ID  int64
	Lat float64
	Lon float64
}

type snapshotEdge struct {
	From     int64
	To       int64
	Length   float64
	NoLength bool
	Name     string
}

// graphSnapshot isi snapshot road network di pebble. urutan node & edge sama dengan urutan insert,
// jadi key parallel edge dan urutan neighbor tetap sama setelah di load.
type graphSnapshot struct {
	Nodes []snapshotNode
	Edges []snapshotEdge
}

func newGraphSnapshot(g *graph.MultiDiGraph) graphSnapshot {
	s := graphSnapshot{
		Nodes: make([]snapshotNode, 0, g.NumNodes()),
		Edges: make([]snapshotEdge, 0, g.NumEdges()),
	}
	for _, n := range g.Nodes() {
		s.Nodes = append(s.Nodes, snapshotNode{ID: int64(n.ID), Lat: n.Lat, Lon: n.Lon})
	}
	g.ForEachEdge(func(u, v datastructure.NodeID, e datastructure.EdgeData) {
		s.Edges = append(s.Edges, snapshotEdge{
			From:     int64(u),
			To:       int64(v),
			Length:   e.Length,
			NoLength: e.NoLength,
			Name:     e.Name,
		})
	})
	return s
}

func (s graphSnapshot) toGraph() *graph.MultiDiGraph {
	g := graph.NewMultiDiGraph()
	for _, n := range s.Nodes {
		g.AddNode(datastructure.Node{ID: datastructure.NodeID(n.ID), Lat: n.Lat, Lon: n.Lon})
	}
	for _, e := range s.Edges {
		g.AddEdge(datastructure.NodeID(e.From), datastructure.NodeID(e.To), datastructure.EdgeData{
			Length:   e.Length,
			NoLength: e.NoLength,
			Name:     e.Name,
		})
	}
	return g
}

func encodeGraph(g *graph.MultiDiGraph) ([]byte, error) {
	bb, err := binary.Marshal(newGraphSnapshot(g))
	if err != nil {
		return nil, err
	}
	return Compress(bb)
}

func decodeGraph(bbCompressed []byte) (*graph.MultiDiGraph, error) {
	bb, err := Decompress(bbCompressed)
	if err != nil {
		return nil, err
	}
	var s graphSnapshot
	if err := binary.Unmarshal(bb, &s); err != nil {
		return nil, err
	}
	return s.toGraph(), nil
}

func CompressNodes(nodes []concurrent.SmallNode) ([]byte, error) {
	bb, err := binary.Marshal(nodes)
	if err != nil {
		return nil, err
	}
	return Compress(bb)
}

func LoadNodes(bbCompressed []byte) ([]concurrent.SmallNode, error) {
	bb, err := Decompress(bbCompressed)
	if err != nil {
		return nil, err
	}
	var nodes []concurrent.SmallNode
	if err := binary.Unmarshal(bb, &nodes); err != nil {
		return nil, err
	}
	return nodes, nil
}

func Compress(bb []byte) ([]byte, error) {
	var bbCompressed []byte
	bbCompressed, err := zstd.Compress(bbCompressed, bb)
	if err != nil {
		return []byte{}, err
	}
	return bbCompressed, nil
}

func Decompress(bbCompressed []byte) ([]byte, error) {
	var bb []byte
	bb, err := zstd.Decompress(bb, bbCompressed)
	if err != nil {
		return []byte{}, err
	}

	return bb, nil
}
