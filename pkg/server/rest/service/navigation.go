package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lintang/penaltyroute/pkg/datastructure"
	"lintang/penaltyroute/pkg/engine/routingalgorithm"
	"lintang/penaltyroute/pkg/geo"
	"lintang/penaltyroute/pkg/server"
	"lintang/penaltyroute/pkg/util"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

var ErrNoRoute = errors.New("no feasible route found")

type RoadNetwork interface {
	Node(id datastructure.NodeID) (datastructure.Node, bool)
}

type PathFinder interface {
	FindPath(start, end datastructure.NodeID) (datastructure.Route, float64, bool)
	Summarize(route datastructure.Route) datastructure.RouteDetails
	Penalty() float64
	Classifier() routingalgorithm.RoadClassifier
}

type Snapper interface {
	NearestNode(lat, lon float64) (datastructure.NodeID, error)
}

type NavigationService struct {
	graph   RoadNetwork
	routing PathFinder
	snapper Snapper
	places  []Place
}

func NewNavigationService(graph RoadNetwork, routing PathFinder, snapper Snapper, places []Place) *NavigationService {
	return &NavigationService{graph: graph, routing: routing, snapper: snapper, places: places}
}

// Endpoint titik asal/tujuan query beserta node road network hasil snapping.
type Endpoint struct {
	Name string               `json:"name,omitempty"`
	Lat  float64              `json:"lat"`
	Lon  float64              `json:"lon"`
	Node datastructure.NodeID `json:"node_id"`
}

// RouteSegment segment rute + atribut buat digambar di peta.
type RouteSegment struct {
	datastructure.SegmentDetail
	Color       string                     `json:"color"`
	Weight      int                        `json:"weight"`
	Label       string                     `json:"label"`
	Coordinates []datastructure.Coordinate `json:"coordinates"`
}

type RouteResult struct {
	Found             bool                     `json:"found"`
	From              Endpoint                 `json:"from"`
	To                Endpoint                 `json:"to"`
	Path              string                   `json:"path"`
	Distance          float64                  `json:"distance"`
	Cost              float64                  `json:"cost"`
	PenalizedRoad     string                   `json:"penalized_road"`
	Penalty           float64                  `json:"penalty"`
	PenalizedSegments int                      `json:"penalized_segments"`
	PenalizedLength   float64                  `json:"penalized_length"`
	Center            datastructure.Coordinate `json:"center"`
	Segments          []RouteSegment           `json:"segments"`
}

func (uc *NavigationService) Places() []Place {
	return uc.places
}

// ShortestPathBetweenPlaces rute antara dua lokasi bernama.
func (uc *NavigationService) ShortestPathBetweenPlaces(ctx context.Context, from, to string) (RouteResult, error) {
	src, ok := uc.findPlace(from)
	if !ok {
		return RouteResult{}, server.WrapErrorf(nil, server.ErrNotFound, "place %q not found", from)
	}
	dst, ok := uc.findPlace(to)
	if !ok {
		return RouteResult{}, server.WrapErrorf(nil, server.ErrNotFound, "place %q not found", to)
	}

	res, err := uc.shortestPath(ctx, Endpoint{Name: src.Name, Lat: src.Lat, Lon: src.Lon},
		Endpoint{Name: dst.Name, Lat: dst.Lat, Lon: dst.Lon})
	if err != nil {
		return RouteResult{}, err
	}
	return res, nil
}

func (uc *NavigationService) ShortestPath(ctx context.Context, srcLat, srcLon float64,
	dstLat float64, dstLon float64) (RouteResult, error) {
	return uc.shortestPath(ctx, Endpoint{Lat: srcLat, Lon: srcLon}, Endpoint{Lat: dstLat, Lon: dstLon})
}

func (uc *NavigationService) findPlace(name string) (Place, bool) {
	return lo.Find(uc.places, func(p Place) bool {
		return strings.EqualFold(p.Name, strings.TrimSpace(name))
	})
}

func (uc *NavigationService) shortestPath(ctx context.Context, from, to Endpoint) (RouteResult, error) {
	if err := ctx.Err(); err != nil {
		return RouteResult{}, server.WrapErrorf(err, server.ErrInternalServerError, "request cancelled")
	}

	var err error
	from.Node, err = uc.snapper.NearestNode(from.Lat, from.Lon)
	if err != nil {
		return RouteResult{}, server.WrapErrorf(err, server.ErrNotFound, "sorry!! the location you entered is not covered on my map :(")
	}
	to.Node, err = uc.snapper.NearestNode(to.Lat, to.Lon)
	if err != nil {
		return RouteResult{}, server.WrapErrorf(err, server.ErrNotFound, "sorry!! the location you entered is not covered on my map :(")
	}

	route, cost, found := uc.routing.FindPath(from.Node, to.Node)
	if !found {
		logrus.WithFields(logrus.Fields{
			"from": from.Node,
			"to":   to.Node,
		}).Info("no feasible route")
		return RouteResult{}, server.WrapErrorf(ErrNoRoute, server.ErrNotFound, "no feasible route found")
	}

	details := uc.routing.Summarize(route)
	centerLat, centerLon := geo.MidPoint(from.Lat, from.Lon, to.Lat, to.Lon)

	res := RouteResult{
		Found:             true,
		From:              from,
		To:                to,
		Path:              datastructure.RenderPath(uc.routeCoordinates(route)),
		Distance:          util.RoundFloat(details.TotalLength, 2),
		Cost:              util.RoundFloat(cost, 2),
		PenalizedRoad:     uc.routing.Classifier().Road(),
		Penalty:           uc.routing.Penalty(),
		PenalizedSegments: details.PenalizedSegments,
		PenalizedLength:   util.RoundFloat(details.PenalizedLength, 2),
		Center:            datastructure.NewCoordinate(centerLat, centerLon),
		Segments: lo.Map(details.Segments, func(s datastructure.SegmentDetail, _ int) RouteSegment {
			return uc.renderSegment(s)
		}),
	}

	logrus.WithFields(logrus.Fields{
		"from":               from.Node,
		"to":                 to.Node,
		"nodes":              len(route),
		"distance":           res.Distance,
		"penalized_segments": res.PenalizedSegments,
	}).Debug("route found")
	return res, nil
}

func (uc *NavigationService) routeCoordinates(route datastructure.Route) []datastructure.Coordinate {
	coords := make([]datastructure.Coordinate, 0, len(route))
	for _, id := range route {
		if n, ok := uc.graph.Node(id); ok {
			coords = append(coords, n.Coordinate())
		}
	}
	return coords
}

func (uc *NavigationService) renderSegment(s datastructure.SegmentDetail) RouteSegment {
	seg := RouteSegment{
		SegmentDetail: s,
		Color:         "blue",
		Weight:        4,
		Label:         segmentLabel(s),
		Coordinates:   uc.routeCoordinates(datastructure.Route{s.From, s.To}),
	}
	if s.IsPenalized {
		seg.Color = "red"
		seg.Weight = 6
	}
	return seg
}

func segmentLabel(s datastructure.SegmentDetail) string {
	name := s.Name
	if name == "" {
		name = "Unnamed"
	}
	return fmt.Sprintf("%s (%.0f m)", name, s.Length)
}
