package render

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
)

const svgMediaType = "image/svg+xml"

// SVGCanvas writes every stroked path as one <path> element.
type SVGCanvas struct {
	width, height int
	background    color.Color

	body   bytes.Buffer
	d      []byte
	stroke string
	lineW  float64
	paths  int

	// set after a non-finite point; the next finite point starts a new subpath
	broken bool
}

// NewSVGCanvas returns a w x h canvas. A nil bg leaves the background transparent.
func NewSVGCanvas(w, h int, bg color.Color) *SVGCanvas {
	return &SVGCanvas{
		width:      w,
		height:     h,
		background: bg,
		stroke:     "#000000",
		lineW:      1,
	}
}

func (c *SVGCanvas) SetStroke(col color.Color, width float64) {
	c.stroke = hexColor(col)
	c.lineW = width
}

func (c *SVGCanvas) MoveTo(x, y float64) {
	if !finite(x, y) {
		c.broken = true
		return
	}
	c.broken = false
	c.d = appendCommand(c.d, 'M', x, y)
}

// LineTo drops segments touching a non-finite point, like RasterCanvas.
func (c *SVGCanvas) LineTo(x, y float64) {
	if !finite(x, y) {
		c.broken = true
		return
	}

	cmd := byte('L')
	if c.broken {
		cmd = 'M'
		c.broken = false
	}
	c.d = appendCommand(c.d, cmd, x, y)
}

func (c *SVGCanvas) Stroke() {
	if len(c.d) == 0 {
		c.broken = false
		return
	}

	fmt.Fprintf(&c.body, `<path fill="none" stroke="%s" stroke-width="%s" d="%s"/>`+"\n",
		c.stroke, formatFloat(c.lineW), c.d)
	c.d = c.d[:0]
	c.broken = false
	c.paths++
}

// Paths returns the number of <path> elements written so far.
func (c *SVGCanvas) Paths() int {
	return c.paths
}

// Bytes returns the complete SVG document, minified when requested.
func (c *SVGCanvas) Bytes(minified bool) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		c.width, c.height, c.width, c.height)
	if c.background != nil {
		fmt.Fprintf(&buf, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", hexColor(c.background))
	}
	buf.Write(c.body.Bytes())
	buf.WriteString("</svg>\n")

	if !minified {
		return buf.Bytes(), nil
	}

	m := minify.New()
	m.AddFunc(svgMediaType, svg.Minify)

	out, err := m.Bytes(svgMediaType, buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("minify svg: %w", err)
	}

	return out, nil
}

func appendCommand(d []byte, cmd byte, x, y float64) []byte {
	if len(d) > 0 {
		d = append(d, ' ')
	}
	d = append(d, cmd)
	d = appendCoord(d, x)
	d = append(d, ',')
	return appendCoord(d, y)
}

func appendCoord(d []byte, v float64) []byte {
	return strconv.AppendFloat(d, math.Round(v*100)/100, 'f', -1, 64)
}

func finite(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && !math.IsNaN(y) && !math.IsInf(y, 0)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
