package projection

import (
	"math"

	"github.com/woozymasta/earthmap/internal/geo"
)

// RadiusScale is the disk radius as a share of the shorter surface side.
const RadiusScale = 0.48

// Azimuthal is a polar projection with the north pole at the surface center.
// Distance from the pole grows linearly with colatitude: latitude 90 maps to
// the center and latitude -90 to the rim of a disk of radius
// RadiusScale*min(width, height). Longitude maps directly to the angle,
// measured from the positive x axis towards positive y.
type Azimuthal struct{}

func (Azimuthal) Name() string { return NameAzimuthal }

func (Azimuthal) Forward(lon, lat, width, height float64) Point {
	radius, cx, cy := azimuthalFrame(width, height)

	// not clamped: latitudes below -90 land outside the disk
	r := radius * (90.0 - lat) / 180.0
	theta := geo.Radians(lon)

	return Point{
		X: cx + r*math.Cos(theta),
		Y: cy + r*math.Sin(theta),
	}
}

// Inverse sets Outside when (x, y) is farther from the center than the disk
// radius; the returned latitude is then below -90.
func (Azimuthal) Inverse(x, y, width, height float64) Location {
	radius, cx, cy := azimuthalFrame(width, height)

	dx, dy := x-cx, y-cy
	r := math.Hypot(dx, dy)

	return Location{
		Lon:     geo.Degrees(math.Atan2(dy, dx)),
		Lat:     90.0 - 180.0*r/radius,
		Outside: r > radius,
	}
}

func azimuthalFrame(width, height float64) (radius, cx, cy float64) {
	return RadiusScale * math.Min(width, height), width / 2, height / 2
}
