package service_test

import (
	"context"
	"errors"
	"testing"

	"lintang/penaltyroute/pkg/datastructure"
	"lintang/penaltyroute/pkg/engine/routingalgorithm"
	"lintang/penaltyroute/pkg/graph"
	"lintang/penaltyroute/pkg/server"
	"lintang/penaltyroute/pkg/server/rest/service"
	"lintang/penaltyroute/pkg/snap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1 = UI Depok, 3 = Margo City. lewat Margonda 400 m, lewat Kober 650 m.
func depokGraph() *graph.MultiDiGraph {
	g := graph.NewMultiDiGraph()
	g.AddNode(datastructure.Node{ID: 1, Lat: -6.3646, Lon: 106.8266})
	g.AddNode(datastructure.Node{ID: 2, Lat: -6.3688, Lon: 106.8322})
	g.AddNode(datastructure.Node{ID: 3, Lat: -6.3729, Lon: 106.8347})
	g.AddNode(datastructure.Node{ID: 4, Lat: -6.3700, Lon: 106.8280})
	g.AddNode(datastructure.Node{ID: 5, Lat: -6.4000, Lon: 106.8000})
	g.AddEdge(1, 2, datastructure.EdgeData{Length: 200, Name: "Jalan Margonda Raya"})
	g.AddEdge(2, 3, datastructure.EdgeData{Length: 200, Name: "Jalan Margonda Raya"})
	g.AddEdge(1, 4, datastructure.EdgeData{Length: 300, Name: "Jalan Kober"})
	g.AddEdge(4, 3, datastructure.EdgeData{Length: 350})
	return g
}

func newService(penalty float64) *service.NavigationService {
	g := depokGraph()
	pf := routingalgorithm.NewPenalizedPathFinder(g, routingalgorithm.WithPenalty(penalty))
	return service.NewNavigationService(g, pf, snap.NewNodeIndex(g.Nodes()), service.DefaultPlaces)
}

type failingSnapper struct{}

func (failingSnapper) NearestNode(lat, lon float64) (datastructure.NodeID, error) {
	return 0, errors.New("tidak ada node di sekitar lokasi")
}

func errCode(t *testing.T, err error) error {
	t.Helper()
	var serr *server.Error
	require.True(t, errors.As(err, &serr))
	return serr.Code()
}

func TestShortestPath(t *testing.T) {
	ctx := context.Background()

	t.Run("avoid margonda", func(t *testing.T) {
		res, err := newService(500).ShortestPath(ctx, -6.3646, 106.8266, -6.3729, 106.8347)
		require.NoError(t, err)

		assert.True(t, res.Found)
		assert.Equal(t, datastructure.NodeID(1), res.From.Node)
		assert.Equal(t, datastructure.NodeID(3), res.To.Node)
		assert.Equal(t, 650.0, res.Distance)
		assert.Equal(t, 650.0, res.Cost)
		assert.Equal(t, "margonda", res.PenalizedRoad)
		assert.Equal(t, 500.0, res.Penalty)
		assert.Equal(t, 0, res.PenalizedSegments)
		assert.NotEmpty(t, res.Path)

		require.Len(t, res.Segments, 2)
		assert.Equal(t, datastructure.NodeID(4), res.Segments[0].To)
		assert.Equal(t, "blue", res.Segments[0].Color)
		assert.Equal(t, 4, res.Segments[0].Weight)
		assert.Equal(t, "Jalan Kober (300 m)", res.Segments[0].Label)
		assert.Equal(t, "Unnamed (350 m)", res.Segments[1].Label)
		assert.Equal(t, []datastructure.Coordinate{
			datastructure.NewCoordinate(-6.3700, 106.8280),
			datastructure.NewCoordinate(-6.3729, 106.8347),
		}, res.Segments[1].Coordinates)
	})

	t.Run("no penalty takes margonda", func(t *testing.T) {
		res, err := newService(0).ShortestPath(ctx, -6.3646, 106.8266, -6.3729, 106.8347)
		require.NoError(t, err)

		assert.Equal(t, 400.0, res.Distance)
		assert.Equal(t, 2, res.PenalizedSegments)
		assert.Equal(t, 400.0, res.PenalizedLength)
		require.Len(t, res.Segments, 2)
		for _, s := range res.Segments {
			assert.True(t, s.IsPenalized)
			assert.Equal(t, "red", s.Color)
			assert.Equal(t, 6, s.Weight)
			assert.Equal(t, "Jalan Margonda Raya (200 m)", s.Label)
		}
	})

	t.Run("center is the midpoint of both ends", func(t *testing.T) {
		res, err := newService(500).ShortestPath(ctx, -6.3646, 106.8266, -6.3729, 106.8347)
		require.NoError(t, err)
		assert.InDelta(t, -6.36875, res.Center.Lat, 1e-4)
		assert.InDelta(t, 106.83065, res.Center.Lon, 1e-4)
	})

	t.Run("unreachable destination", func(t *testing.T) {
		_, err := newService(500).ShortestPath(ctx, -6.3646, 106.8266, -6.4000, 106.8000)
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrNoRoute)
		assert.Equal(t, server.ErrNotFound, errCode(t, err))
	})

	t.Run("location outside the map", func(t *testing.T) {
		g := depokGraph()
		svc := service.NewNavigationService(g, routingalgorithm.NewPenalizedPathFinder(g), failingSnapper{}, service.DefaultPlaces)
		_, err := svc.ShortestPath(ctx, 1, 1, 2, 2)
		require.Error(t, err)
		assert.Equal(t, server.ErrNotFound, errCode(t, err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := newService(500).ShortestPath(cctx, -6.3646, 106.8266, -6.3729, 106.8347)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestShortestPathBetweenPlaces(t *testing.T) {
	ctx := context.Background()

	t.Run("known places", func(t *testing.T) {
		res, err := newService(500).ShortestPathBetweenPlaces(ctx, "UI Depok", "margo city mall")
		require.NoError(t, err)
		assert.Equal(t, "UI Depok", res.From.Name)
		assert.Equal(t, "Margo City Mall", res.To.Name)
		assert.Equal(t, datastructure.NodeID(1), res.From.Node)
		assert.Equal(t, datastructure.NodeID(3), res.To.Node)
		assert.Equal(t, 650.0, res.Distance)
	})

	t.Run("same place", func(t *testing.T) {
		res, err := newService(500).ShortestPathBetweenPlaces(ctx, "UI Depok", "UI Depok")
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.Equal(t, 0.0, res.Distance)
		assert.Empty(t, res.Segments)
	})

	t.Run("unknown place", func(t *testing.T) {
		_, err := newService(500).ShortestPathBetweenPlaces(ctx, "UI Depok", "Monas")
		require.Error(t, err)
		assert.Equal(t, server.ErrNotFound, errCode(t, err))
	})
}

func TestPlaces(t *testing.T) {
	places := newService(500).Places()
	require.Len(t, places, 6)
	assert.Equal(t, "UI Depok", places[0].Name)
	assert.Equal(t, "Kampus D Gunadarma", places[5].Name)
}
