package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/woozymasta/earthmap/internal/config"
	"github.com/woozymasta/earthmap/internal/geo"
	"github.com/woozymasta/earthmap/internal/logger"
	"github.com/woozymasta/earthmap/internal/render"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"     env:"CONFIG_FILE" description:"Path to configuration file (optional)"`
	Source     string `short:"i" long:"in"         env:"SOURCE"      description:"GeoJSON file or http(s) URL, overrides config"`
	Output     string `short:"o" long:"out"                          description:"Output file, map.<format> if empty; format is taken from the extension when --format is not set"`
	Format     string `short:"f" long:"format"                       description:"Output format" choice:"png" choice:"webp" choice:"svg"`
	Projection string `short:"p" long:"projection" env:"PROJECTION"  description:"Projection (equirectangular or azimuthal)"`
	Width      int    `short:"W" long:"width"                        description:"Surface width in pixels"`
	Height     int    `short:"H" long:"height"                       description:"Surface height in pixels"`
	NoGrid     bool   `short:"G" long:"no-grid"                      description:"Do not draw the meridian/parallel grid"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		cfg, err = config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
	}

	applyOverrides(cfg, opts)
	if opts.Output == "" {
		opts.Output = "map." + cfg.Format
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid options")
	}
	if cfg.Source == "" {
		log.Fatal().Msg("No GeoJSON source: set --in or source in the configuration")
	}

	client := &http.Client{Timeout: 60 * time.Second}
	fc, err := geo.Load(context.Background(), client, cfg.Source)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.Source).Msg("Failed to load GeoJSON")
	}

	store := geo.NewPolygonStore()
	if _, err := store.Ingest(fc); err != nil {
		log.Fatal().Err(err).Str("source", cfg.Source).Msg("Failed to ingest polygons")
	}

	if err := writeMap(opts.Output, cfg, store); err != nil {
		log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to write map")
	}

	log.Info().
		Str("path", opts.Output).
		Str("format", cfg.Format).
		Str("projection", cfg.ProjectionFor().Name()).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Msg("Map rendered successfully")
}

func applyOverrides(cfg *config.Config, opts Options) {
	if opts.Source != "" {
		cfg.Source = opts.Source
	}
	if opts.Projection != "" {
		cfg.Projection = opts.Projection
	}
	if opts.Width > 0 {
		cfg.Width = opts.Width
	}
	if opts.Height > 0 {
		cfg.Height = opts.Height
	}
	if opts.NoGrid {
		grid := false
		cfg.Grid = &grid
	}

	switch {
	case opts.Format != "":
		cfg.Format = opts.Format
	case render.ContentType(extFormat(opts.Output)) != "":
		cfg.Format = extFormat(opts.Output)
	}
}

func extFormat(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func writeMap(path string, cfg *config.Config, store *geo.PolygonStore) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
		}
	}()

	return render.Encode(f, cfg.Format, cfg.Width, cfg.Height, cfg.ProjectionFor(), store, cfg.RenderOptions())
}
