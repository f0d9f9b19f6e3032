package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/chai2010/webp"
	"golang.org/x/image/vector"
)

type segment struct {
	x0, y0, x1, y1 float64
}

// RasterCanvas strokes paths onto an RGBA image.
type RasterCanvas struct {
	img   *image.RGBA
	z     *vector.Rasterizer
	src   *image.Uniform
	width float64

	path       []segment
	penX, penY float64
	hasPen     bool
}

// NewRasterCanvas returns a w x h canvas filled with bg. A nil bg leaves it transparent.
func NewRasterCanvas(w, h int, bg color.Color) *RasterCanvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if bg != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	return &RasterCanvas{
		img:   img,
		z:     vector.NewRasterizer(w, h),
		src:   image.NewUniform(color.Black),
		width: 1,
	}
}

// Image returns the underlying image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

func (c *RasterCanvas) SetStroke(col color.Color, width float64) {
	c.src = image.NewUniform(col)
	c.width = width
}

func (c *RasterCanvas) MoveTo(x, y float64) {
	c.penX, c.penY = x, y
	c.hasPen = true
}

func (c *RasterCanvas) LineTo(x, y float64) {
	if c.hasPen {
		c.path = append(c.path, segment{c.penX, c.penY, x, y})
	}
	c.penX, c.penY = x, y
	c.hasPen = true
}

// Stroke rasterizes every segment of the current path as a quad of the
// stroke width and clears the path.
func (c *RasterCanvas) Stroke() {
	defer func() {
		c.path = c.path[:0]
		c.hasPen = false
	}()

	if len(c.path) == 0 || c.width <= 0 {
		return
	}

	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())

	hw := c.width / 2
	clip := [4]float64{-c.width, -c.width, float64(b.Dx()) + c.width, float64(b.Dy()) + c.width}

	drawn := 0
	for _, s := range c.path {
		s, ok := clipSegment(s, clip)
		if !ok {
			continue
		}

		dx, dy := s.x1-s.x0, s.y1-s.y0
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*hw, dx/l*hw

		c.z.MoveTo(float32(s.x0+nx), float32(s.y0+ny))
		c.z.LineTo(float32(s.x1+nx), float32(s.y1+ny))
		c.z.LineTo(float32(s.x1-nx), float32(s.y1-ny))
		c.z.LineTo(float32(s.x0-nx), float32(s.y0-ny))
		c.z.ClosePath()
		drawn++
	}

	if drawn > 0 {
		c.z.Draw(c.img, b, c.src, image.Point{})
	}
}

// clipSegment clips s to the rectangle {minX, minY, maxX, maxY}
// (Liang-Barsky). Segments with non-finite coordinates are dropped.
func clipSegment(s segment, r [4]float64) (segment, bool) {
	for _, v := range [4]float64{s.x0, s.y0, s.x1, s.y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return s, false
		}
	}

	dx, dy := s.x1-s.x0, s.y1-s.y0
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, s.x0 - r[0]},
		{dx, r[2] - s.x0},
		{-dy, s.y0 - r[1]},
		{dy, r[3] - s.y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return s, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return s, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return s, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	return segment{
		x0: s.x0 + t0*dx, y0: s.y0 + t0*dy,
		x1: s.x0 + t1*dx, y1: s.y0 + t1*dy,
	}, true
}

// EncodePNG writes the canvas as PNG.
func (c *RasterCanvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// EncodeWebP writes the canvas as WebP.
func (c *RasterCanvas) EncodeWebP(w io.Writer, quality float32, lossless bool) error {
	return webp.Encode(w, c.img, &webp.Options{Lossless: lossless, Quality: quality})
}
