package projection

import "github.com/woozymasta/earthmap/internal/geo"

// Projector converts coordinates for a live surface with a selectable
// projection. The surface size is read on every call, so resizing needs no
// re-ingest and nothing is cached.
//
// A Projector is not safe for concurrent use; callers that resize or switch
// projections from other goroutines must serialize access themselves.
type Projector struct {
	surface    Surface
	projection Projection
}

// NewProjector returns a Projector drawing onto surface with projection p.
// A nil p selects Equirectangular.
func NewProjector(surface Surface, p Projection) *Projector {
	if p == nil {
		p = Equirectangular{}
	}

	return &Projector{surface: surface, projection: p}
}

// SetProjection switches the projection used by all subsequent calls.
func (pr *Projector) SetProjection(p Projection) {
	pr.projection = p
}

// Projection returns the active projection.
func (pr *Projector) Projection() Projection {
	return pr.projection
}

// Surface returns the surface the projector draws onto.
func (pr *Projector) Surface() Surface {
	return pr.surface
}

// Forward maps degrees to pixels.
func (pr *Projector) Forward(lon, lat float64) Point {
	w, h := pr.surface.Size()
	return pr.projection.Forward(lon, lat, w, h)
}

// Inverse maps pixels to degrees. Check Location.Outside before trusting the
// result of a bounded projection.
func (pr *Projector) Inverse(x, y float64) Location {
	w, h := pr.surface.Size()
	return pr.projection.Inverse(x, y, w, h)
}

// ProjectPolygon maps every vertex of p, preserving order.
func (pr *Projector) ProjectPolygon(p geo.Polygon) []Point {
	w, h := pr.surface.Size()

	out := make([]Point, len(p.Lon))
	for i := range p.Lon {
		out[i] = pr.projection.Forward(p.Lon[i], p.Lat[i], w, h)
	}

	return out
}
