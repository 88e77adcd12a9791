package snap

import (
	"errors"

	"lintang/penaltyroute/pkg/datastructure"

	"github.com/golang/geo/s2"
)

var ErrEmptyIndex = errors.New("tidak ada node di road network")

// Nearest node terdekat (great-circle s2) dari candidates. jarak sama -> id lebih kecil.
func Nearest(candidates []datastructure.Node, lat, lon float64) (datastructure.Node, bool) {
	if len(candidates) == 0 {
		return datastructure.Node{}, false
	}
	target := s2.LatLngFromDegrees(lat, lon)

	best := candidates[0]
	bestDist := target.Distance(s2.LatLngFromDegrees(best.Lat, best.Lon))
	for _, c := range candidates[1:] {
		d := target.Distance(s2.LatLngFromDegrees(c.Lat, c.Lon))
		if d < bestDist || (d == bestDist && c.ID < best.ID) {
			best = c
			bestDist = d
		}
	}
	return best, true
}

// DistanceMeters great-circle distance pakai s2, radius bumi 6371 km
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	angle := s2.LatLngFromDegrees(lat1, lon1).Distance(s2.LatLngFromDegrees(lat2, lon2))
	return angle.Radians() * 6371000.0
}
