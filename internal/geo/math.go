package geo

import "math"

// Radians converts degrees to radians using a full turn of 360 degrees.
func Radians(deg float64) float64 {
	return 2.0 * math.Pi * deg / 360.0
}

// Degrees converts radians to degrees, the inverse of Radians.
func Degrees(rad float64) float64 {
	return 360.0 * rad / (2.0 * math.Pi)
}
