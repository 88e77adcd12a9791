package graph_test

import (
	"testing"

	"lintang/penaltyroute/pkg/datastructure"
	"lintang/penaltyroute/pkg/graph"

	"github.com/stretchr/testify/assert"
)

func TestMultiDiGraph(t *testing.T) {
	g := graph.NewMultiDiGraph()
	g.AddNode(datastructure.Node{ID: 1, Lat: -6.3646, Lon: 106.8266})
	g.AddNode(datastructure.Node{ID: 2, Lat: -6.3685, Lon: 106.8320})

	t.Run("parallel edges get increasing keys", func(t *testing.T) {
		k0 := g.AddEdge(1, 2, datastructure.EdgeData{Length: 80, Name: "Jalan Margonda Raya"})
		k1 := g.AddEdge(1, 2, datastructure.EdgeData{Length: 50})
		assert.Equal(t, 0, k0)
		assert.Equal(t, 1, k1)

		edges := g.EdgeData(1, 2)
		assert.Len(t, edges, 2)
		assert.Equal(t, 80.0, edges[0].Length)
		assert.Equal(t, 50.0, edges[1].Length)
	})

	t.Run("neighbors keep insertion order and are directed", func(t *testing.T) {
		g.AddEdge(1, 3, datastructure.EdgeData{Length: 10})
		g.AddEdge(1, 2, datastructure.EdgeData{Length: 70})
		assert.Equal(t, []datastructure.NodeID{2, 3}, g.Neighbors(1))
		assert.Empty(t, g.Neighbors(2))
		assert.Nil(t, g.EdgeData(2, 1))
	})

	t.Run("edge to unknown node adds the node", func(t *testing.T) {
		_, ok := g.Node(3)
		assert.True(t, ok)
		assert.Equal(t, 3, g.NumNodes())
		assert.Equal(t, 4, g.NumEdges())
	})

	t.Run("self loop", func(t *testing.T) {
		g.AddEdge(3, 3, datastructure.EdgeData{Length: 5})
		assert.Equal(t, []datastructure.NodeID{3}, g.Neighbors(3))
	})

	t.Run("for each edge is ordered", func(t *testing.T) {
		var keys []int
		var pairs [][2]datastructure.NodeID
		g.ForEachEdge(func(u, v datastructure.NodeID, e datastructure.EdgeData) {
			pairs = append(pairs, [2]datastructure.NodeID{u, v})
			keys = append(keys, e.Key)
		})
		assert.Equal(t, [][2]datastructure.NodeID{{1, 2}, {1, 2}, {1, 2}, {1, 3}, {3, 3}}, pairs)
		assert.Equal(t, []int{0, 1, 2, 0, 0}, keys)
	})

	t.Run("nodes in insertion order", func(t *testing.T) {
		nodes := g.Nodes()
		assert.Equal(t, datastructure.NodeID(1), nodes[0].ID)
		assert.Equal(t, -6.3646, nodes[0].Lat)
		assert.Equal(t, datastructure.NodeID(3), nodes[2].ID)
	})
}
