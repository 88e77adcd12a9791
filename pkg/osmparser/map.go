package osmparser

import (
	"lintang/penaltyroute/pkg/datastructure"
	"lintang/penaltyroute/pkg/geo"
	"lintang/penaltyroute/pkg/graph"
)

// osmWay way yang sudah difilter (drivable), node masih pakai id osm.
type osmWay struct {
	ID       int64
	NodeIDs  []int64
	Name     string
	Forward  bool
	Backward bool
}

func newOsmWay(id int64, nodeIDs []int64, tagMap map[string]string) osmWay {
	forward, backward := wayDirection(tagMap)
	return osmWay{
		ID:       id,
		NodeIDs:  nodeIDs,
		Name:     tagMap["name"],
		Forward:  forward,
		Backward: backward,
	}
}

// buildGraph bikin road network dari ways. node graph cuma ujung way & node yang dipakai >= 2 kali (intersection),
// way dipotong di node graph dan panjang edge = jumlah haversine antar node osm (meter).
func buildGraph(ways []osmWay, coords map[int64]datastructure.Coordinate) *graph.MultiDiGraph {
	usedInRoad := make(map[int64]int)
	for i, way := range ways {
		ways[i].NodeIDs = withCoordinates(way.NodeIDs, coords)
		for _, id := range ways[i].NodeIDs {
			usedInRoad[id]++
		}
	}

	g := graph.NewMultiDiGraph()
	addNode := func(id int64) {
		c := coords[id]
		if _, ok := g.Node(datastructure.NodeID(id)); !ok {
			g.AddNode(datastructure.Node{ID: datastructure.NodeID(id), Lat: c.Lat, Lon: c.Lon})
		}
	}

	for _, way := range ways {
		if len(way.NodeIDs) < 2 {
			continue
		}

		from := way.NodeIDs[0]
		addNode(from)
		length := 0.0
		for i := 1; i < len(way.NodeIDs); i++ {
			prev, curr := coords[way.NodeIDs[i-1]], coords[way.NodeIDs[i]]
			length += geo.HaversineMeters(prev.Lat, prev.Lon, curr.Lat, curr.Lon)

			to := way.NodeIDs[i]
			isLast := i == len(way.NodeIDs)-1
			if usedInRoad[to] < 2 && !isLast {
				continue
			}

			// nodenya ada di intersection of 2 or more roads / ujung way
			addNode(to)
			e := datastructure.EdgeData{Length: length, Name: way.Name}
			if way.Forward {
				g.AddEdge(datastructure.NodeID(from), datastructure.NodeID(to), e)
			}
			if way.Backward {
				g.AddEdge(datastructure.NodeID(to), datastructure.NodeID(from), e)
			}
			from = to
			length = 0
		}
	}
	return g
}

// withCoordinates buang node yang koordinatnya gak ada di extract (way kepotong di batas extract).
func withCoordinates(nodeIDs []int64, coords map[int64]datastructure.Coordinate) []int64 {
	kept := make([]int64, 0, len(nodeIDs))
	for _, id := range nodeIDs {
		if _, ok := coords[id]; ok {
			kept = append(kept, id)
		}
	}
	return kept
}
