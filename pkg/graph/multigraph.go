package graph

import (
	"lintang/penaltyroute/pkg/datastructure"
)

type adjacency struct {
	order []datastructure.NodeID // urutan neighbor sesuai edge pertama ditambahkan
	edges map[datastructure.NodeID][]datastructure.EdgeData
}

// MultiDiGraph directed multigraph road network. boleh ada parallel edge & self-loop.
// setelah selesai dibangun graph cuma dibaca, aman dipakai banyak goroutine.
type MultiDiGraph struct {
	nodes     map[datastructure.NodeID]datastructure.Node
	nodeOrder []datastructure.NodeID
	adj       map[datastructure.NodeID]*adjacency
	edgeCount int
}

func NewMultiDiGraph() *MultiDiGraph {
	return &MultiDiGraph{
		nodes:     make(map[datastructure.NodeID]datastructure.Node),
		nodeOrder: make([]datastructure.NodeID, 0),
		adj:       make(map[datastructure.NodeID]*adjacency),
	}
}

// AddNode tambah node atau update koordinat node yang sudah ada.
func (g *MultiDiGraph) AddNode(n datastructure.Node) {
	if _, ok := g.nodes[n.ID]; !ok {
		g.nodeOrder = append(g.nodeOrder, n.ID)
	}
	g.nodes[n.ID] = n
}

func (g *MultiDiGraph) ensureNode(id datastructure.NodeID) {
	if _, ok := g.nodes[id]; !ok {
		g.AddNode(datastructure.Node{ID: id})
	}
}

// AddEdge tambah edge u->v dan return key nya. key = jumlah parallel edge (u,v) sebelumnya.
func (g *MultiDiGraph) AddEdge(u, v datastructure.NodeID, e datastructure.EdgeData) int {
	g.ensureNode(u)
	g.ensureNode(v)

	a, ok := g.adj[u]
	if !ok {
		a = &adjacency{edges: make(map[datastructure.NodeID][]datastructure.EdgeData)}
		g.adj[u] = a
	}
	if _, ok := a.edges[v]; !ok {
		a.order = append(a.order, v)
	}
	e.Key = len(a.edges[v])
	a.edges[v] = append(a.edges[v], e)
	g.edgeCount++
	return e.Key
}

// Neighbors successor dari u. slice jangan diubah.
func (g *MultiDiGraph) Neighbors(u datastructure.NodeID) []datastructure.NodeID {
	a, ok := g.adj[u]
	if !ok {
		return nil
	}
	return a.order
}

// EdgeData semua parallel edge u->v urut key. nil kalau gak ada.
func (g *MultiDiGraph) EdgeData(u, v datastructure.NodeID) []datastructure.EdgeData {
	a, ok := g.adj[u]
	if !ok {
		return nil
	}
	return a.edges[v]
}

func (g *MultiDiGraph) Node(id datastructure.NodeID) (datastructure.Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes semua node urut sesuai ditambahkan.
func (g *MultiDiGraph) Nodes() []datastructure.Node {
	nodes := make([]datastructure.Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

func (g *MultiDiGraph) NumNodes() int {
	return len(g.nodes)
}

func (g *MultiDiGraph) NumEdges() int {
	return g.edgeCount
}

// ForEachEdge iterasi semua edge dengan urutan deterministik (node, neighbor, key).
func (g *MultiDiGraph) ForEachEdge(fn func(u, v datastructure.NodeID, e datastructure.EdgeData)) {
	for _, u := range g.nodeOrder {
		a, ok := g.adj[u]
		if !ok {
			continue
		}
		for _, v := range a.order {
			for _, e := range a.edges[v] {
				fn(u, v, e)
			}
		}
	}
}
