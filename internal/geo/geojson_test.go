package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.geojson")
	require.NoError(t, os.WriteFile(path, []byte(mixedCollection), 0644))

	fc, err := Load(context.Background(), nil, path)
	require.NoError(t, err)
	assert.Len(t, fc.Features, 4)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), nil, filepath.Join(t.TempDir(), "nope.geojson"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/world.geojson" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/geo+json")
		_, _ = w.Write([]byte(mixedCollection))
	}))
	defer srv.Close()

	fc, err := Load(context.Background(), srv.Client(), srv.URL+"/world.geojson")
	require.NoError(t, err)
	assert.Len(t, fc.Features, 4)

	_, err = Load(context.Background(), srv.Client(), srv.URL+"/missing.geojson")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestDecodeWithoutTypeTags(t *testing.T) {
	fc, err := Decode(strings.NewReader(`{"features":[
	  {"geometry":{"type":"Polygon","coordinates":[[[0,0],[10,0],[10,10]]]}},
	  {"geometry":{"type":"MultiPolygon","coordinates":[[[[1,1],[2,1],[2,2],[1,2]]]]}}
	]}`))
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)

	s := NewPolygonStore()
	n, err := s.Ingest(fc)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, 2, s.Len())
}

func TestDecodeSkipsUnknownAndNullGeometries(t *testing.T) {
	fc, err := Decode(strings.NewReader(`{"type":"FeatureCollection","features":[
	  {"type":"Feature","properties":{"name":"disc"},"geometry":{"type":"Circle","coordinates":[0,0],"radius":5}},
	  {"type":"Feature","properties":null,"geometry":null},
	  {"type":"Feature"},
	  {"type":"Feature","properties":{"name":"tri"},"geometry":{"type":"Polygon","coordinates":[[[0,0],[10,0],[10,10]]]}}
	]}`))
	require.NoError(t, err)
	require.Len(t, fc.Features, 4)
	assert.Nil(t, fc.Features[0].Geometry)
	assert.Equal(t, "disc", fc.Features[0].Properties["name"])
	assert.Nil(t, fc.Features[1].Geometry)
	assert.Nil(t, fc.Features[2].Geometry)

	s := NewPolygonStore()
	n, err := s.Ingest(fc)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 1, s.Len())
}

func TestDecodeMalformedCoordinates(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"features":[
	  {"geometry":{"type":"Polygon","coordinates":[[[0,0],[10,0]]]}},
	  {"geometry":{"type":"Polygon","coordinates":"nope"}}
	]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feature 1")
}
