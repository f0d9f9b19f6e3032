// Package geo handles geographic data structures and GeoJSON ingestion.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"
)

// Load reads a GeoJSON feature collection from a local file or an http(s) URL.
func Load(ctx context.Context, client *http.Client, source string) (*geojson.FeatureCollection, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetch(ctx, client, source)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	log.Debug().Str("path", source).Msg("Reading GeoJSON from file")
	return Decode(f)
}

// rawCollection is the loose envelope accepted by Decode: "type" tags are
// optional and geometries are decoded one feature at a time.
type rawCollection struct {
	Features []struct {
		Properties geojson.Properties `json:"properties"`
		Geometry   json.RawMessage    `json:"geometry"`
	} `json:"features"`
}

// Decode parses a GeoJSON feature collection. Features with a null or
// unsupported geometry are kept with a nil geometry so that indexes match
// the input.
func Decode(r io.Reader) (*geojson.FeatureCollection, error) {
	var raw rawCollection
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode geojson: %w", err)
	}

	fc := geojson.NewFeatureCollection()
	for i, rf := range raw.Features {
		f := geojson.NewFeature(nil)
		if rf.Properties != nil {
			f.Properties = rf.Properties
		}
		fc.Append(f)

		if len(rf.Geometry) == 0 || string(rf.Geometry) == "null" {
			continue
		}

		g, err := geojson.UnmarshalGeometry(rf.Geometry)
		if errors.Is(err, geojson.ErrInvalidGeometry) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("decode geojson: feature %d: %w", i, err)
		}
		f.Geometry = g.Geometry()
	}

	return fc, nil
}

func fetch(ctx context.Context, client *http.Client, url string) (*geojson.FeatureCollection, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	log.Info().Str("url", url).Msg("Downloading GeoJSON...")
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download failed: status %d", resp.StatusCode)
	}

	return Decode(resp.Body)
}
