package routingalgorithm

import (
	"strings"

	"lintang/penaltyroute/pkg/datastructure"
)

// RoadClassifier menentukan apakah edge termasuk jalan yang kena penalti (misal Jalan Margonda).
type RoadClassifier struct {
	road string
}

func NewRoadClassifier(roadName string) RoadClassifier {
	return RoadClassifier{road: strings.ToLower(roadName)}
}

func (c RoadClassifier) Road() string {
	return c.road
}

// IsPenalizedName cek nama jalan (case-insensitive substring). nama kosong/gak ada dianggap "".
func (c RoadClassifier) IsPenalizedName(name string) bool {
	return strings.Contains(strings.ToLower(name), c.road)
}

// IsPenalizedEdge true kalau salah satu parallel edge (u,v) namanya mengandung nama jalan yang kena penalti.
// semua parallel edge dicek, bukan cuma yang paling pendek.
func (c RoadClassifier) IsPenalizedEdge(g RoadGraph, u, v datastructure.NodeID) bool {
	for _, e := range g.EdgeData(u, v) {
		if c.IsPenalizedName(e.Name) {
			return true
		}
	}
	return false
}
