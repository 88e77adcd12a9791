package graph

import (
	"fmt"
	"io"
	"strings"

	"lintang/penaltyroute/pkg/datastructure"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type nodeLinkNode struct {
	ID int64   `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type nodeLinkEdge struct {
	Source int64               `json:"source"`
	Target int64               `json:"target"`
	Length *float64            `json:"length"`
	Name   jsoniter.RawMessage `json:"name"`
}

type nodeLinkData struct {
	Nodes []nodeLinkNode `json:"nodes"`
	Links []nodeLinkEdge `json:"links"`
	Edges []nodeLinkEdge `json:"edges"`
}

// LoadNodeLinkJSON baca graph format node-link networkx (hasil osmnx). x = lon, y = lat.
func LoadNodeLinkJSON(r io.Reader) (*MultiDiGraph, error) {
	var data nodeLinkData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse node-link graph: %w", err)
	}

	g := NewMultiDiGraph()
	for _, n := range data.Nodes {
		g.AddNode(datastructure.Node{ID: datastructure.NodeID(n.ID), Lat: n.Y, Lon: n.X})
	}

	links := data.Links
	if len(links) == 0 {
		links = data.Edges
	}
	for i, l := range links {
		name, err := decodeName(l.Name)
		if err != nil {
			return nil, fmt.Errorf("link %d: %w", i, err)
		}
		e := datastructure.EdgeData{Name: name}
		if l.Length == nil {
			e.NoLength = true
		} else {
			e.Length = *l.Length
		}
		g.AddEdge(datastructure.NodeID(l.Source), datastructure.NodeID(l.Target), e)
	}
	return g, nil
}

// decodeName nama jalan osmnx bisa string atau list string (jalan hasil simplifikasi).
func decodeName(raw jsoniter.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return "", fmt.Errorf("invalid name attribute %s: %w", string(raw), err)
	}
	return strings.Join(names, ", "), nil
}
