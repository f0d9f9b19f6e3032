// Package render draws projected map data onto concrete canvases and encodes the result.
package render

import (
	"image/color"

	"github.com/woozymasta/earthmap/internal/geo"
	"github.com/woozymasta/earthmap/internal/projection"
)

// Canvas is a drawing sink with a configurable stroke.
type Canvas interface {
	projection.Sink

	// SetStroke applies to paths stroked after the call.
	SetStroke(c color.Color, width float64)
}

// Stroke is a line colour and width in pixels.
type Stroke struct {
	Color color.Color
	Width float64
}

// Options controls what is drawn and how it is encoded.
type Options struct {
	Background color.Color
	GridStroke Stroke
	PolyStroke Stroke
	Grid       bool

	// webp
	Quality  float32
	Lossless bool

	// svg
	Minify bool
}

// DefaultOptions returns black polygons and a light grey grid on white.
func DefaultOptions() Options {
	return Options{
		Background: color.White,
		GridStroke: Stroke{Color: color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}, Width: 0.5},
		PolyStroke: Stroke{Color: color.Black, Width: 1},
		Grid:       true,
		Quality:    90,
		Minify:     true,
	}
}

// Map draws the reference grid (when enabled) and then every polygon in store.
func Map(c Canvas, p *projection.Projector, store *geo.PolygonStore, opts Options) {
	if opts.Grid {
		c.SetStroke(opts.GridStroke.Color, opts.GridStroke.Width)
		p.RenderGrid(c)
	}

	c.SetStroke(opts.PolyStroke.Color, opts.PolyStroke.Width)
	p.RenderPolygons(c, store)
}
