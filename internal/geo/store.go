package geo

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"
)

// ErrEmptyRing is returned when a polygon has no outer ring or the ring has no points.
var ErrEmptyRing = errors.New("polygon has no outer ring")

// PolygonStore is an append-only list of polygons in feature order.
// It is not safe for concurrent writes; once loading is done it is only read.
type PolygonStore struct {
	polygons []Polygon
	points   int
}

// NewPolygonStore returns an empty store.
func NewPolygonStore() *PolygonStore {
	return &PolygonStore{}
}

// Ingest appends the outer ring of every Polygon and MultiPolygon member in fc.
// Holes and other geometry types are skipped. It returns the number of points
// added by this call.
func (s *PolygonStore) Ingest(fc *geojson.FeatureCollection) (int, error) {
	added := 0
	before := len(s.polygons)

	for i, f := range fc.Features {
		if f == nil {
			continue
		}

		switch g := f.Geometry.(type) {
		case orb.Polygon:
			n, err := s.addOuterRing(g)
			if err != nil {
				return added, fmt.Errorf("feature %d: %w", i, err)
			}
			added += n

		case orb.MultiPolygon:
			for j, poly := range g {
				n, err := s.addOuterRing(poly)
				if err != nil {
					return added, fmt.Errorf("feature %d polygon %d: %w", i, j, err)
				}
				added += n
			}

		default:
			// points, lines and null geometries are not drawn
		}
	}

	log.Info().
		Int("points", added).
		Int("polygons", len(s.polygons)-before).
		Msgf("Added %d points", added)

	return added, nil
}

func (s *PolygonStore) addOuterRing(poly orb.Polygon) (int, error) {
	if len(poly) == 0 || len(poly[0]) == 0 {
		return 0, ErrEmptyRing
	}

	p := NewPolygon(poly[0])
	s.polygons = append(s.polygons, p)
	s.points += p.Len()

	return p.Len(), nil
}

// Polygons returns the stored polygons. Callers must not modify the slice.
func (s *PolygonStore) Polygons() []Polygon {
	return s.polygons
}

// Len returns the number of stored polygons.
func (s *PolygonStore) Len() int {
	return len(s.polygons)
}

// Points returns the number of points ingested over the lifetime of the store.
func (s *PolygonStore) Points() int {
	return s.points
}
