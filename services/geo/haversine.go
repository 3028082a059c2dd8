package geo

import "math"

// earthRadiusMiles is the sphere radius used for great-circle distances.
const earthRadiusMiles = 3959.0

// Point is a geographic coordinate pair in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}

// HaversineMiles computes the great-circle distance between two points on a
// sphere of radius 3959 miles.
func HaversineMiles(a, b Point) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusMiles * c
}
