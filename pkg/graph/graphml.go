package graph

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"lintang/penaltyroute/pkg/datastructure"
)

type graphMLData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

type graphMLKey struct {
	ID   string `xml:"id,attr"`
	For  string `xml:"for,attr"`
	Name string `xml:"attr.name,attr"`
}

type graphMLNode struct {
	ID   string        `xml:"id,attr"`
	Data []graphMLData `xml:"data"`
}

type graphMLEdge struct {
	Source string        `xml:"source,attr"`
	Target string        `xml:"target,attr"`
	Data   []graphMLData `xml:"data"`
}

type graphMLDoc struct {
	Keys  []graphMLKey `xml:"key"`
	Graph struct {
		Nodes []graphMLNode `xml:"node"`
		Edges []graphMLEdge `xml:"edge"`
	} `xml:"graph"`
}

// LoadGraphML baca graph GraphML yang disimpan osmnx (save_graphml). atribut yang dipakai: node x,y dan edge length,name.
func LoadGraphML(r io.Reader) (*MultiDiGraph, error) {
	var doc graphMLDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse graphml: %w", err)
	}

	// key id (d4, d10, ...) -> nama atribut
	nodeAttr := make(map[string]string)
	edgeAttr := make(map[string]string)
	for _, k := range doc.Keys {
		switch k.For {
		case "node":
			nodeAttr[k.ID] = k.Name
		case "edge":
			edgeAttr[k.ID] = k.Name
		}
	}

	g := NewMultiDiGraph()
	for _, n := range doc.Graph.Nodes {
		id, err := strconv.ParseInt(n.ID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid node id %q: %w", n.ID, err)
		}
		node := datastructure.Node{ID: datastructure.NodeID(id)}
		for _, d := range n.Data {
			switch nodeAttr[d.Key] {
			case "x":
				node.Lon, err = strconv.ParseFloat(d.Value, 64)
			case "y":
				node.Lat, err = strconv.ParseFloat(d.Value, 64)
			}
			if err != nil {
				return nil, fmt.Errorf("node %d: invalid coordinate: %w", id, err)
			}
		}
		g.AddNode(node)
	}

	for _, e := range doc.Graph.Edges {
		u, err := strconv.ParseInt(e.Source, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid edge source %q: %w", e.Source, err)
		}
		v, err := strconv.ParseInt(e.Target, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid edge target %q: %w", e.Target, err)
		}

		edge := datastructure.EdgeData{NoLength: true}
		for _, d := range e.Data {
			switch edgeAttr[d.Key] {
			case "length":
				length, err := strconv.ParseFloat(d.Value, 64)
				if err != nil {
					return nil, fmt.Errorf("edge %d->%d: invalid length %q: %w", u, v, d.Value, err)
				}
				edge.Length = length
				edge.NoLength = false
			case "name":
				edge.Name = d.Value
			}
		}
		g.AddEdge(datastructure.NodeID(u), datastructure.NodeID(v), edge)
	}

	return g, nil
}
