// Package server handles HTTP requests and middleware.
package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/woozymasta/earthmap/internal/config"
	"github.com/woozymasta/earthmap/internal/projection"
	"github.com/woozymasta/earthmap/internal/render"
)

// MapInfo is the body of /api/map.
type MapInfo struct {
	Projection string `json:"projection"`
	Format     string `json:"format"`
	Polygons   int    `json:"polygons"`
	Points     int    `json:"points"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Grid       bool   `json:"grid"`
}

// view is the surface and projection requested by a query.
type view struct {
	projection projection.Projection
	width      int
	height     int
}

// HandleMapInfo serves a JSON summary of the loaded data and defaults.
func (s *ServerContext) HandleMapInfo(w http.ResponseWriter, r *http.Request) {
	opts := s.Config.RenderOptions()
	writeJSON(w, MapInfo{
		Projection: s.Config.ProjectionFor().Name(),
		Format:     s.Config.Format,
		Polygons:   s.Store.Len(),
		Points:     s.Store.Points(),
		Width:      s.Config.Width,
		Height:     s.Config.Height,
		Grid:       opts.Grid,
	})
}

// HandleMap serves the rendered map. Path: /map.{png,webp,svg}
func (s *ServerContext) HandleMap(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/")
	format, ok := strings.CutPrefix(name, "map.")
	if !ok || render.ContentType(format) == "" {
		http.NotFound(w, r)
		return
	}

	v, err := s.parseView(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	opts := s.Config.RenderOptions()
	if g := r.URL.Query().Get("grid"); g != "" {
		grid, err := strconv.ParseBool(g)
		if err != nil {
			http.Error(w, "invalid grid: "+g, http.StatusBadRequest)
			return
		}
		opts.Grid = grid
	}

	// render fully before writing so failures can still become a 500
	var buf bytes.Buffer
	if err := render.Encode(&buf, format, v.width, v.height, v.projection, s.Store, opts); err != nil {
		log.Error().Err(err).Str("format", format).Msg("Failed to render map")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", render.ContentType(format))
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(buf.Bytes())
}

// HandleLocate maps a surface pixel to a geographic location.
// Query: x, y and optional width, height, projection.
func (s *ServerContext) HandleLocate(w http.ResponseWriter, r *http.Request) {
	v, err := s.parseView(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	x, err := floatParam(r, "x")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	y, err := floatParam(r, "y")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, v.projector().Inverse(x, y))
}

// HandleProject maps a geographic location to a surface pixel.
// Query: lon, lat and optional width, height, projection.
func (s *ServerContext) HandleProject(w http.ResponseWriter, r *http.Request) {
	v, err := s.parseView(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	lon, err := floatParam(r, "lon")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	lat, err := floatParam(r, "lat")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, v.projector().Forward(lon, lat))
}

func (v view) projector() *projection.Projector {
	return projection.NewProjector(
		projection.Size{Width: float64(v.width), Height: float64(v.height)},
		v.projection)
}

// parseView reads width, height and projection, falling back to the config.
// Requested sizes are capped by the configured max_size.
func (s *ServerContext) parseView(r *http.Request) (view, error) {
	q := r.URL.Query()
	maxSize := s.Config.MaxSize
	if maxSize <= 0 {
		maxSize = config.DefaultMaxSize
	}
	v := view{
		projection: s.Config.ProjectionFor(),
		width:      s.Config.Width,
		height:     s.Config.Height,
	}

	if p := q.Get("projection"); p != "" {
		v.projection = projection.ForName(p)
	}

	for _, dim := range []struct {
		name string
		dst  *int
	}{
		{"width", &v.width},
		{"height", &v.height},
	} {
		raw := q.Get(dim.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxSize {
			return view{}, fmt.Errorf("invalid %s: %q", dim.name, raw)
		}
		*dim.dst = n
	}

	return v, nil
}

func floatParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing %s", name)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}

	return v, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(v)
}
