package geo

import "github.com/paulmach/orb"

// Polygon is a single ring stored as parallel longitude and latitude slices
// (degrees). The ring is closed implicitly when drawn; the closing point is
// not repeated.
type Polygon struct {
	Lon []float64
	Lat []float64
}

// NewPolygon splits a ring of [lon, lat] pairs into a Polygon.
func NewPolygon(ring orb.Ring) Polygon {
	p := Polygon{
		Lon: make([]float64, 0, len(ring)),
		Lat: make([]float64, 0, len(ring)),
	}
	for _, pt := range ring {
		p.Lon = append(p.Lon, pt.Lon())
		p.Lat = append(p.Lat, pt.Lat())
	}

	return p
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.Lon)
}
