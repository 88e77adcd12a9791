package routingalgorithm

import (
	"math"

	"lintang/penaltyroute/pkg/datastructure"

	"github.com/samber/lo"
)

const (
	DefaultPenalty       = 500.0
	DefaultPenalizedRoad = "margonda"
)

// RoadGraph graph road network yang cuma dibaca. EdgeData harus return parallel edge urut key.
type RoadGraph interface {
	Neighbors(u datastructure.NodeID) []datastructure.NodeID
	EdgeData(u, v datastructure.NodeID) []datastructure.EdgeData
}

type PenalizedPathFinder struct {
	g          RoadGraph
	classifier RoadClassifier
	penalty    float64
}

type Option func(*PenalizedPathFinder)

// WithPenalty tambahan cost (meter) untuk setiap edge jalan yang kena penalti.
func WithPenalty(penalty float64) Option {
	return func(pf *PenalizedPathFinder) {
		pf.penalty = penalty
	}
}

func WithPenalizedRoad(roadName string) Option {
	return func(pf *PenalizedPathFinder) {
		pf.classifier = NewRoadClassifier(roadName)
	}
}

func NewPenalizedPathFinder(g RoadGraph, opts ...Option) *PenalizedPathFinder {
	pf := &PenalizedPathFinder{
		g:          g,
		classifier: NewRoadClassifier(DefaultPenalizedRoad),
		penalty:    DefaultPenalty,
	}
	for _, opt := range opts {
		opt(pf)
	}
	return pf
}

func (pf *PenalizedPathFinder) Penalty() float64 {
	return pf.penalty
}

func (pf *PenalizedPathFinder) Classifier() RoadClassifier {
	return pf.classifier
}

// stepCost cost satu langkah u->v: length edge terpendek + penalti kalau jalan yang dihindari.
// false kalau gak ada edge data untuk (u,v).
func (pf *PenalizedPathFinder) stepCost(u, v datastructure.NodeID) (float64, bool) {
	edge, ok := datastructure.ShortestEdge(pf.g.EdgeData(u, v))
	if !ok {
		return 0, false
	}
	cost := edge.EffectiveLength()
	if pf.classifier.IsPenalizedEdge(pf.g, u, v) {
		cost += pf.penalty
	}
	return cost, true
}

/*
FindPath dijkstra dari start ke end dengan cost edge = length edge terpendek + penalti jalan.
search berhenti begitu end di pop dari priority queue. entry queue yang basi (rank > dist tercatat) di skip.
found false kalau end gak reachable dari start.

time complexity: O((V+E)logE), priority queue pakai binary heap dengan lazy deletion.
*/
func (pf *PenalizedPathFinder) FindPath(start, end datastructure.NodeID) (datastructure.Route, float64, bool) {
	dist := map[datastructure.NodeID]float64{start: 0}
	cameFrom := make(map[datastructure.NodeID]datastructure.NodeID)

	pq := datastructure.NewMinHeap[datastructure.NodeID]()
	pq.Insert(datastructure.PriorityQueueNode[datastructure.NodeID]{Rank: 0, Item: start})

	for pq.Size() > 0 {
		curr, _ := pq.ExtractMin()
		if curr.Item == end {
			break
		}

		if curr.Rank > distOf(dist, curr.Item) {
			continue
		}

		for _, neighbor := range pf.g.Neighbors(curr.Item) {
			cost, ok := pf.stepCost(curr.Item, neighbor)
			if !ok {
				continue
			}

			newDist := curr.Rank + cost
			if newDist < distOf(dist, neighbor) {
				dist[neighbor] = newDist
				cameFrom[neighbor] = curr.Item
				pq.Insert(datastructure.PriorityQueueNode[datastructure.NodeID]{Rank: newDist, Item: neighbor})
			}
		}
	}

	route, ok := reconstructPath(cameFrom, start, end)
	if !ok {
		return nil, math.Inf(1), false
	}
	return route, dist[end], true
}

func distOf(dist map[datastructure.NodeID]float64, n datastructure.NodeID) float64 {
	d, ok := dist[n]
	if !ok {
		return math.Inf(1)
	}
	return d
}

// reconstructPath jalan mundur dari end lewat cameFrom lalu dibalik. valid cuma kalau node pertama == start.
func reconstructPath(cameFrom map[datastructure.NodeID]datastructure.NodeID, start, end datastructure.NodeID) (datastructure.Route, bool) {
	path := datastructure.Route{end}
	curr := end
	for steps := 0; ; steps++ {
		prev, ok := cameFrom[curr]
		if !ok {
			break
		}
		if steps >= len(cameFrom) {
			// cameFrom berputar, graph rusak
			return nil, false
		}
		path = append(path, prev)
		curr = prev
	}

	path = lo.Reverse(path)
	if path[0] != start {
		return nil, false
	}
	return path, true
}

// RouteCost total cost rute sesuai cost function pencarian (length + penalti). pasangan node tanpa edge di skip.
func (pf *PenalizedPathFinder) RouteCost(route datastructure.Route) float64 {
	total := 0.0
	for i := 0; i+1 < len(route); i++ {
		cost, ok := pf.stepCost(route[i], route[i+1])
		if !ok {
			continue
		}
		total += cost
	}
	return total
}
