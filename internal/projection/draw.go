package projection

import "github.com/woozymasta/earthmap/internal/geo"

// Sink receives path commands. MoveTo and LineTo accumulate into a path that
// is kept until Stroke draws and clears it.
type Sink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
}

// Grid layout in degrees.
const (
	GridStep   = 30.0
	SampleStep = 5.0

	// parallels are sampled one step past 180 so the closing segment is drawn
	parallelLonEnd = 190.0
)

// RenderGrid strokes parallels at every GridStep from -90 up to (not
// including) 90 and meridians at every GridStep from -180 up to (not
// including) 180. Each line is its own stroked path.
func (pr *Projector) RenderGrid(sink Sink) {
	for lat := -90.0; lat < 90.0; lat += GridStep {
		first := true
		for lon := -180.0; lon <= parallelLonEnd; lon += SampleStep {
			pr.trace(sink, lon, lat, first)
			first = false
		}
		sink.Stroke()
	}

	for lon := -180.0; lon < 180.0; lon += GridStep {
		first := true
		for lat := -90.0; lat <= 90.0; lat += SampleStep {
			pr.trace(sink, lon, lat, first)
			first = false
		}
		sink.Stroke()
	}
}

func (pr *Projector) trace(sink Sink, lon, lat float64, first bool) {
	p := pr.Forward(lon, lat)
	if first {
		sink.MoveTo(p.X, p.Y)
		return
	}
	sink.LineTo(p.X, p.Y)
}

// RenderPolygons draws every polygon in store as a closed ring and strokes
// all of them with a single Stroke call.
func (pr *Projector) RenderPolygons(sink Sink, store *geo.PolygonStore) {
	for _, poly := range store.Polygons() {
		pts := pr.ProjectPolygon(poly)
		if len(pts) == 0 {
			continue
		}

		sink.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			sink.LineTo(p.X, p.Y)
		}
		sink.LineTo(pts[0].X, pts[0].Y)
	}

	sink.Stroke()
}
