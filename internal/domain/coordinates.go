package domain

import "math"

// Immutable geographic coordinates (latitude, longitude) in degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

const earthRadiusKm = 6371

// DistanceKm returns the great-circle distance to other in kilometers
// using the haversine formula. Coordinates outside the valid degree range
// still produce a defined (if physically meaningless) value.
func (c Coordinates) DistanceKm(other Coordinates) float64 {
	dlat := radians(other.Lat - c.Lat)
	dlng := radians(other.Lng - c.Lng)

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(radians(c.Lat))*math.Cos(radians(other.Lat))*math.Sin(dlng/2)*math.Sin(dlng/2)
	arc := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * arc
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
