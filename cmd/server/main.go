package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/woozymasta/earthmap/internal/config"
	"github.com/woozymasta/earthmap/internal/geo"
	"github.com/woozymasta/earthmap/internal/logger"
	"github.com/woozymasta/earthmap/internal/server"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE"    description:"Path to configuration file" default:"config.yaml"`
	Source     string `short:"i" long:"in"     env:"SOURCE"         description:"GeoJSON file or http(s) URL, overrides config"`
	Addr       string `short:"a" long:"addr"   env:"LISTEN_ADDRESS" description:"Address to listen on"       default:"0.0.0.0"`
	Port       int    `short:"p" long:"port"   env:"LISTEN_PORT"    description:"Port to listen on"          default:"8080"`
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

	// Setup Logging
	opts.Logger.Setup()

	// Load Config
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if opts.Source != "" {
		cfg.Source = opts.Source
	}

	// Load polygons once, the store is read-only afterwards
	client := &http.Client{Timeout: 60 * time.Second}
	fc, err := geo.Load(context.Background(), client, cfg.Source)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.Source).Msg("Failed to load GeoJSON")
	}

	store := geo.NewPolygonStore()
	if _, err := store.Ingest(fc); err != nil {
		log.Fatal().Err(err).Str("source", cfg.Source).Msg("Failed to ingest polygons")
	}

	srvCtx := server.NewServerContext(cfg, store)

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	log.Info().
		Str("addr", listenAddr).
		Int("polygons_loaded", store.Len()).
		Msg("Web server started")

	if err := http.ListenAndServe(listenAddr, srvCtx.Handler()); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
