package domain

import "math"

// Region is a serviceable area with a centroid used for straight-line
// distance estimation. The engine does not model routing beyond this.
type Region struct {
	Code string
	Lat  float64
	Lon  float64
}

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two region centroids.
func DistanceKm(a, b Region) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
