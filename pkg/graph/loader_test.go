package graph_test

import (
	"strings"
	"testing"

	"lintang/penaltyroute/pkg/datastructure"
	"lintang/penaltyroute/pkg/graph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const depokGraphML = `<?xml version='1.0' encoding='utf-8'?>
<graphml xmlns="http://graphml.graphdrawing.org/xmlns">
  <key id="d4" for="node" attr.name="x" attr.type="string" />
  <key id="d3" for="node" attr.name="y" attr.type="string" />
  <key id="d10" for="edge" attr.name="length" attr.type="string" />
  <key id="d8" for="edge" attr.name="name" attr.type="string" />
  <graph edgedefault="directed">
    <node id="100"><data key="d3">-6.3646</data><data key="d4">106.8266</data></node>
    <node id="200"><data key="d3">-6.3685</data><data key="d4">106.8320</data></node>
    <edge source="100" target="200" id="0"><data key="d8">Jalan Margonda Raya</data><data key="d10">512.3</data></edge>
    <edge source="100" target="200" id="1"><data key="d8">['Jalan Kober', 'Jalan Sawo']</data><data key="d10">430</data></edge>
    <edge source="200" target="100" id="0"></edge>
  </graph>
</graphml>`

func TestLoadGraphML(t *testing.T) {
	g, err := graph.LoadGraphML(strings.NewReader(depokGraphML))
	require.NoError(t, err)

	assert.Equal(t, 2, g.NumNodes())
	assert.Equal(t, 3, g.NumEdges())

	n, ok := g.Node(100)
	require.True(t, ok)
	assert.Equal(t, -6.3646, n.Lat)
	assert.Equal(t, 106.8266, n.Lon)

	edges := g.EdgeData(100, 200)
	require.Len(t, edges, 2)
	assert.Equal(t, "Jalan Margonda Raya", edges[0].Name)
	assert.Equal(t, 512.3, edges[0].Length)
	assert.Equal(t, "['Jalan Kober', 'Jalan Sawo']", edges[1].Name)

	back := g.EdgeData(200, 100)
	require.Len(t, back, 1)
	assert.True(t, back[0].NoLength)
	assert.Equal(t, "", back[0].Name)
}

func TestLoadGraphMLInvalid(t *testing.T) {
	_, err := graph.LoadGraphML(strings.NewReader(`<graphml><graph><node id="abc"/></graph></graphml>`))
	assert.Error(t, err)
}

func TestLoadNodeLinkJSON(t *testing.T) {
	t.Run("links with list names and missing length", func(t *testing.T) {
		data := `{
			"directed": true, "multigraph": true, "graph": {},
			"nodes": [{"id": 1, "x": 106.8266, "y": -6.3646}, {"id": 2, "x": 106.8320, "y": -6.3685}],
			"links": [
				{"source": 1, "target": 2, "key": 0, "length": 100.5, "name": ["Jalan Margonda Raya", "Jalan Juanda"]},
				{"source": 2, "target": 1, "key": 0, "name": null}
			]
		}`
		g, err := graph.LoadNodeLinkJSON(strings.NewReader(data))
		require.NoError(t, err)

		edges := g.EdgeData(1, 2)
		require.Len(t, edges, 1)
		assert.Equal(t, "Jalan Margonda Raya, Jalan Juanda", edges[0].Name)
		assert.Equal(t, 100.5, edges[0].Length)

		back := g.EdgeData(2, 1)
		require.Len(t, back, 1)
		assert.True(t, back[0].NoLength)

		n, _ := g.Node(2)
		assert.Equal(t, datastructure.Node{ID: 2, Lat: -6.3685, Lon: 106.8320}, n)
	})

	t.Run("edges key used by newer networkx", func(t *testing.T) {
		data := `{"nodes": [{"id": 1}, {"id": 2}], "edges": [{"source": 1, "target": 2, "length": 3, "name": "Jalan Kober"}]}`
		g, err := graph.LoadNodeLinkJSON(strings.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 1, g.NumEdges())
	})

	t.Run("bad name", func(t *testing.T) {
		data := `{"nodes": [], "links": [{"source": 1, "target": 2, "length": 3, "name": 5}]}`
		_, err := graph.LoadNodeLinkJSON(strings.NewReader(data))
		assert.Error(t, err)
	})
}
