package routingalgorithm_test

import (
	"testing"

	"lintang/penaltyroute/pkg/datastructure"
	"lintang/penaltyroute/pkg/engine/routingalgorithm"
	"lintang/penaltyroute/pkg/graph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Run("empty and single node route", func(t *testing.T) {
		pf := routingalgorithm.NewPenalizedPathFinder(diamondGraph())
		for _, route := range []datastructure.Route{nil, {}, {nodeA}} {
			details := pf.Summarize(route)
			assert.Equal(t, 0.0, details.TotalLength)
			assert.Equal(t, 0, details.PenalizedSegments)
			assert.Equal(t, 0.0, details.PenalizedLength)
			assert.NotNil(t, details.Segments)
			assert.Empty(t, details.Segments)
		}
	})

	t.Run("margonda route", func(t *testing.T) {
		pf := routingalgorithm.NewPenalizedPathFinder(diamondGraph(), routingalgorithm.WithPenalty(0))
		route, _, found := pf.FindPath(nodeA, nodeD)
		require.True(t, found)

		details := pf.Summarize(route)
		assert.Equal(t, 200.0, details.TotalLength)
		assert.Equal(t, 2, details.PenalizedSegments)
		assert.Equal(t, 200.0, details.PenalizedLength)
		assert.Equal(t, []datastructure.SegmentDetail{
			{From: nodeA, To: nodeB, Length: 100, Name: "Margonda", IsPenalized: true},
			{From: nodeB, To: nodeD, Length: 100, Name: "Margonda", IsPenalized: true},
		}, details.Segments)
	})

	t.Run("detour route", func(t *testing.T) {
		pf := routingalgorithm.NewPenalizedPathFinder(diamondGraph(), routingalgorithm.WithPenalty(60))
		route, _, _ := pf.FindPath(nodeA, nodeD)
		details := pf.Summarize(route)
		assert.Equal(t, 300.0, details.TotalLength)
		assert.Equal(t, 0, details.PenalizedSegments)
		assert.Equal(t, 0.0, details.PenalizedLength)
		assert.Len(t, details.Segments, 2)
	})

	t.Run("selects shortest parallel edge", func(t *testing.T) {
		g := graph.NewMultiDiGraph()
		g.AddEdge(nodeA, nodeB, datastructure.EdgeData{Length: 80, Name: "Jalan Kober"})
		g.AddEdge(nodeA, nodeB, datastructure.EdgeData{Length: 50, Name: "Jalan Sawo"})
		pf := routingalgorithm.NewPenalizedPathFinder(g)
		details := pf.Summarize(datastructure.Route{nodeA, nodeB})
		require.Len(t, details.Segments, 1)
		assert.Equal(t, 50.0, details.Segments[0].Length)
		assert.Equal(t, "Jalan Sawo", details.Segments[0].Name)
		assert.Equal(t, 50.0, details.TotalLength)
	})

	t.Run("only the selected edge is classified", func(t *testing.T) {
		g := graph.NewMultiDiGraph()
		g.AddEdge(nodeA, nodeB, datastructure.EdgeData{Length: 50, Name: "Jalan Kober"})
		g.AddEdge(nodeA, nodeB, datastructure.EdgeData{Length: 80, Name: "Jalan Margonda Raya"})
		pf := routingalgorithm.NewPenalizedPathFinder(g)

		assert.True(t, pf.Classifier().IsPenalizedEdge(g, nodeA, nodeB))

		details := pf.Summarize(datastructure.Route{nodeA, nodeB})
		require.Len(t, details.Segments, 1)
		assert.False(t, details.Segments[0].IsPenalized)
		assert.Equal(t, 0, details.PenalizedSegments)
		assert.Equal(t, 0.0, details.PenalizedLength)
	})

	t.Run("pairs without edges are skipped", func(t *testing.T) {
		pf := routingalgorithm.NewPenalizedPathFinder(diamondGraph())
		details := pf.Summarize(datastructure.Route{nodeA, nodeC, nodeB, nodeD})
		assert.Equal(t, []datastructure.SegmentDetail{
			{From: nodeA, To: nodeC, Length: 150},
			{From: nodeB, To: nodeD, Length: 100, Name: "Margonda", IsPenalized: true},
		}, details.Segments)
		assert.Equal(t, 250.0, details.TotalLength)
		assert.Equal(t, 1, details.PenalizedSegments)
		assert.Equal(t, 100.0, details.PenalizedLength)
	})

	t.Run("missing length reported as zero", func(t *testing.T) {
		g := graph.NewMultiDiGraph()
		g.AddEdge(nodeA, nodeB, datastructure.EdgeData{NoLength: true, Name: "Margonda"})
		pf := routingalgorithm.NewPenalizedPathFinder(g)
		details := pf.Summarize(datastructure.Route{nodeA, nodeB})
		require.Len(t, details.Segments, 1)
		assert.Equal(t, 0.0, details.Segments[0].Length)
		assert.Equal(t, 1, details.PenalizedSegments)
		assert.Equal(t, 0.0, details.TotalLength)
	})

	t.Run("total equals sum of segments", func(t *testing.T) {
		g := gridGraph(5)
		pf := routingalgorithm.NewPenalizedPathFinder(g, routingalgorithm.WithPenalty(20))
		route, _, found := pf.FindPath(1, 25)
		require.True(t, found)
		details := pf.Summarize(route)

		sum, penalized := 0.0, 0.0
		count := 0
		for _, s := range details.Segments {
			sum += s.Length
			if s.IsPenalized {
				penalized += s.Length
				count++
			}
		}
		assert.InDelta(t, sum, details.TotalLength, 1e-9)
		assert.InDelta(t, penalized, details.PenalizedLength, 1e-9)
		assert.Equal(t, count, details.PenalizedSegments)
		assert.Len(t, details.Segments, len(route)-1)
	})
}
