// Package projection maps geographic coordinates onto a drawing surface and back.
package projection

// Point is a position on the drawing surface in pixels. It may lie outside
// the visible surface.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Location is a geographic position in degrees.
// Outside is set by projections with a bounded valid area when the inverse
// mapped pixel fell beyond it; Lon and Lat are then not meaningful.
type Location struct {
	Lon     float64 `json:"lon" yaml:"lon"`
	Lat     float64 `json:"lat" yaml:"lat"`
	Outside bool    `json:"outside" yaml:"outside"`
}

// Projection converts between degrees and pixels on a surface of the given size.
type Projection interface {
	// Name returns the configuration name of the projection.
	Name() string

	// Forward maps longitude/latitude (degrees) to surface pixels.
	Forward(lon, lat, width, height float64) Point

	// Inverse maps surface pixels back to longitude/latitude (degrees).
	Inverse(x, y, width, height float64) Location
}

// Projection names accepted by ForName.
const (
	NameEquirectangular = "equirectangular"
	NameAzimuthal       = "azimuthal"
)

// ForName returns the projection selected by name: "equirectangular" selects
// Equirectangular, every other value selects Azimuthal.
func ForName(name string) Projection {
	if name == NameEquirectangular {
		return Equirectangular{}
	}

	return Azimuthal{}
}

// Surface reports the current drawing surface size in pixels.
type Surface interface {
	Size() (width, height float64)
}

// Size is a fixed surface size.
type Size struct {
	Width  float64
	Height float64
}

// Size implements Surface.
func (s Size) Size() (float64, float64) {
	return s.Width, s.Height
}
