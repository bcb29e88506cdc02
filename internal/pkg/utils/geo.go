package utils

import "math"

// Coordinate is a WGS84 position in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// CalculateHaversineDistance returns the great-circle distance between two
// coordinates in meters.
func CalculateHaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371000 // Earth radius in meters

	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// WithinRadius reports whether current lies inside the circular geofence
// around office. The boundary is inclusive: a distance exactly equal to
// radiusMeters passes.
func WithinRadius(current, office Coordinate, radiusMeters float64) bool {
	distance := CalculateHaversineDistance(
		current.Latitude, current.Longitude,
		office.Latitude, office.Longitude,
	)
	return distance <= radiusMeters
}
