package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/woozymasta/earthmap/internal/config"
	"github.com/woozymasta/earthmap/internal/geo"
)

// ServerContext holds dependencies for request handlers.
// The store is read-only once the context is built; every request projects
// through its own Projector, so handlers share no mutable state.
type ServerContext struct {
	Config *config.Config
	Store  *geo.PolygonStore
}

// NewServerContext wraps an already loaded store and validated configuration.
func NewServerContext(cfg *config.Config, store *geo.PolygonStore) *ServerContext {
	log.Info().
		Int("polygons", store.Len()).
		Int("points", store.Points()).
		Str("projection", cfg.ProjectionFor().Name()).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Msg("Server context initialized successfully")

	return &ServerContext{
		Config: cfg,
		Store:  store,
	}
}

// Handler returns the routes wrapped in the request logger.
func (s *ServerContext) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/map", s.HandleMapInfo)
	mux.HandleFunc("/api/locate", s.HandleLocate)
	mux.HandleFunc("/api/project", s.HandleProject)
	mux.HandleFunc("/map.png", s.HandleMap)
	mux.HandleFunc("/map.webp", s.HandleMap)
	mux.HandleFunc("/map.svg", s.HandleMap)

	return RequestLogger(mux)
}
