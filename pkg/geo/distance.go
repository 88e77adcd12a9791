package geo

import "math"

// haversine distance
const earthRadiusKM = 6371.0

type Location struct {
	Latitude  float64
	Longitude float64
}

func degreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

func radToDeg(r float64) float64 {
	return 180.0 * r / math.Pi
}

func NewLocation(latDegree float64, lonDegree float64) Location {
	return Location{
		Latitude:  degreeToRadians(latDegree),
		Longitude: degreeToRadians(lonDegree),
	}
}

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

func havFormula(locationOne Location, locationTwo Location) float64 {
	latDiff := locationOne.Latitude - locationTwo.Latitude
	lonDiff := locationOne.Longitude - locationTwo.Longitude

	return havFunction(latDiff) + math.Cos(locationOne.Latitude)*math.Cos(locationTwo.Latitude)*havFunction(lonDiff)
}

func archaversine(havAngle float64) float64 {
	return 2.0 * math.Asin(math.Sqrt(havAngle))
}

// HaversineDistance jarak great-circle dalam km
func HaversineDistance(locationOne Location, locationTwo Location) float64 {
	return earthRadiusKM * archaversine(havFormula(locationOne, locationTwo))
}

// HaversineMeters jarak dua koordinat (derajat) dalam meter
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	return HaversineDistance(NewLocation(lat1, lon1), NewLocation(lat2, lon2)) * 1000
}

//	φ is latitude, λ is longitude
//
// https://www.movable-type.co.uk/scripts/latlong.html
func MidPoint(lat1, lon1 float64, lat2, lon2 float64) (float64, float64) {
	p1LatRad := degreeToRadians(lat1)
	p2LatRad := degreeToRadians(lat2)

	diffLon := degreeToRadians(lon2 - lon1)

	bx := math.Cos(p2LatRad) * math.Cos(diffLon)
	by := math.Cos(p2LatRad) * math.Sin(diffLon)

	newLon := degreeToRadians(lon1) + math.Atan2(by, math.Cos(p1LatRad)+bx)
	newLat := math.Atan2(math.Sin(p1LatRad)+math.Sin(p2LatRad), math.Sqrt((math.Cos(p1LatRad)+bx)*(math.Cos(p1LatRad)+bx)+by*by))

	return radToDeg(newLat), radToDeg(newLon)
}
