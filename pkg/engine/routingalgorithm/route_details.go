package routingalgorithm

import (
	"lintang/penaltyroute/pkg/datastructure"
)

// Summarize detail per segmen rute & total panjang jalan yang kena penalti.
// tiap segmen pakai edge terpendek, dan cuma nama edge itu yang dicek (beda dengan IsPenalizedEdge yang cek semua parallel edge).
func (pf *PenalizedPathFinder) Summarize(route datastructure.Route) datastructure.RouteDetails {
	return Summarize(pf.g, pf.classifier, route)
}

func Summarize(g RoadGraph, classifier RoadClassifier, route datastructure.Route) datastructure.RouteDetails {
	details := datastructure.RouteDetails{
		Segments: make([]datastructure.SegmentDetail, 0),
	}

	for i := 0; i+1 < len(route); i++ {
		u, v := route[i], route[i+1]
		edge, ok := datastructure.ShortestEdge(g.EdgeData(u, v))
		if !ok {
			continue
		}

		length := edge.ReportedLength()
		penalized := classifier.IsPenalizedName(edge.Name)

		details.TotalLength += length
		details.Segments = append(details.Segments, datastructure.SegmentDetail{
			From:        u,
			To:          v,
			Length:      length,
			Name:        edge.Name,
			IsPenalized: penalized,
		})

		if penalized {
			details.PenalizedSegments++
			details.PenalizedLength += length
		}
	}

	return details
}
