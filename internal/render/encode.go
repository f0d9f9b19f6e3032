package render

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/woozymasta/earthmap/internal/geo"
	"github.com/woozymasta/earthmap/internal/projection"
)

// Output formats.
const (
	FormatPNG  = "png"
	FormatWebP = "webp"
	FormatSVG  = "svg"
)

// ContentType returns the media type of an output format, or "" if unknown.
func ContentType(format string) string {
	switch format {
	case FormatPNG:
		return "image/png"
	case FormatWebP:
		return "image/webp"
	case FormatSVG:
		return svgMediaType
	default:
		return ""
	}
}

// Encode renders store through a fresh Projector of size w x h and writes
// the result in the given format.
func Encode(out io.Writer, format string, w, h int, p projection.Projection, store *geo.PolygonStore, opts Options) error {
	pr := projection.NewProjector(projection.Size{Width: float64(w), Height: float64(h)}, p)

	log.Debug().
		Str("format", format).
		Str("projection", pr.Projection().Name()).
		Int("width", w).
		Int("height", h).
		Int("polygons", store.Len()).
		Msg("Rendering map")

	switch format {
	case FormatPNG, FormatWebP:
		c := NewRasterCanvas(w, h, opts.Background)
		Map(c, pr, store, opts)
		if format == FormatPNG {
			return c.EncodePNG(out)
		}
		return c.EncodeWebP(out, opts.Quality, opts.Lossless)

	case FormatSVG:
		c := NewSVGCanvas(w, h, opts.Background)
		Map(c, pr, store, opts)
		data, err := c.Bytes(opts.Minify)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err

	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
