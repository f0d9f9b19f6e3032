// Package config handles configuration loading and render defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/earthmap/internal/projection"
	"github.com/woozymasta/earthmap/internal/render"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Config represents the root configuration file structure.
type Config struct {
	Style      Style   `yaml:"style" json:"style"`
	Source     string  `yaml:"source" json:"-"`
	Projection string  `yaml:"projection" json:"projection"`
	Format     string  `yaml:"format,omitempty" json:"format"`
	Width      int     `yaml:"width" json:"width"`
	Height     int     `yaml:"height" json:"height"`
	MaxSize    int     `yaml:"max_size,omitempty" json:"max_size"`
	Quality    float32 `yaml:"quality,omitempty" json:"-"`
	Grid       *bool   `yaml:"grid,omitempty" json:"grid"`
	Lossless   bool    `yaml:"lossless,omitempty" json:"-"`
	Minify     *bool   `yaml:"minify,omitempty" json:"-"`
}

// Style holds the colours of the rendered map.
type Style struct {
	Background string      `yaml:"background,omitempty" json:"background"`
	Grid       StrokeStyle `yaml:"grid" json:"grid"`
	Polygons   StrokeStyle `yaml:"polygons" json:"polygons"`
}

// StrokeStyle is a "#rrggbb" colour and a line width in pixels.
type StrokeStyle struct {
	Color string  `yaml:"color,omitempty" json:"color"`
	Width float64 `yaml:"width,omitempty" json:"width"`
}

// Defaults
const (
	DefaultProjection = projection.NameEquirectangular
	DefaultFormat     = render.FormatPNG
	DefaultWidth      = 1440
	DefaultHeight     = 720
	DefaultMaxSize    = 2048
	DefaultQuality    = 90
)

// Load reads and parses the YAML configuration file from the specified path.
// Missing values are filled with defaults and the result is validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills zero values.
func (c *Config) ApplyDefaults() {
	if c.Projection == "" {
		c.Projection = DefaultProjection
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.MaxSize == 0 {
		c.MaxSize = DefaultMaxSize
	}
	if c.Quality == 0 {
		c.Quality = DefaultQuality
	}
	if c.Grid == nil {
		c.Grid = boolPtr(true)
	}
	if c.Minify == nil {
		c.Minify = boolPtr(true)
	}

	if c.Style.Background == "" {
		c.Style.Background = "#ffffff"
	}
	if c.Style.Grid.Color == "" {
		c.Style.Grid.Color = "#b0b0b0"
	}
	if c.Style.Grid.Width == 0 {
		c.Style.Grid.Width = 0.5
	}
	if c.Style.Polygons.Color == "" {
		c.Style.Polygons.Color = "#1f3a5f"
	}
	if c.Style.Polygons.Width == 0 {
		c.Style.Polygons.Width = 1
	}
}

// Validate checks sizes, format, quality and colours.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalid, c.Width, c.Height)
	}
	if c.MaxSize > 0 && (c.Width > c.MaxSize || c.Height > c.MaxSize) {
		return fmt.Errorf("%w: size %dx%d exceeds max_size %d", ErrInvalid, c.Width, c.Height, c.MaxSize)
	}
	if render.ContentType(c.Format) == "" {
		return fmt.Errorf("%w: unknown format %q", ErrInvalid, c.Format)
	}
	if c.Quality < 0 || c.Quality > 100 {
		return fmt.Errorf("%w: quality %v out of range 0..100", ErrInvalid, c.Quality)
	}

	for name, s := range map[string]string{
		"style.background":     c.Style.Background,
		"style.grid.color":     c.Style.Grid.Color,
		"style.polygons.color": c.Style.Polygons.Color,
	} {
		if _, err := colorful.Hex(s); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, name, err)
		}
	}

	return nil
}

// RenderOptions converts the configuration into render options.
// Colours must have passed Validate.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		Background: parseColor(c.Style.Background),
		GridStroke: render.Stroke{Color: parseColor(c.Style.Grid.Color), Width: c.Style.Grid.Width},
		PolyStroke: render.Stroke{Color: parseColor(c.Style.Polygons.Color), Width: c.Style.Polygons.Width},
		Grid:       c.Grid == nil || *c.Grid,
		Quality:    c.Quality,
		Lossless:   c.Lossless,
		Minify:     c.Minify == nil || *c.Minify,
	}
}

// ProjectionFor returns the configured projection.
func (c *Config) ProjectionFor() projection.Projection {
	return projection.ForName(c.Projection)
}

func parseColor(s string) colorful.Color {
	col, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return col
}

func boolPtr(b bool) *bool { return &b }
