package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/webp"

	"github.com/woozymasta/earthmap/internal/geo"
	"github.com/woozymasta/earthmap/internal/projection"
)

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/png", ContentType(FormatPNG))
	assert.Equal(t, "image/webp", ContentType(FormatWebP))
	assert.Equal(t, "image/svg+xml", ContentType(FormatSVG))
	assert.Empty(t, ContentType("gif"))
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, FormatPNG, 120, 60, projection.Equirectangular{}, geo.NewPolygonStore(), DefaultOptions())
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())
}

func TestEncodeWebP(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, FormatWebP, 64, 64, projection.Azimuthal{}, geo.NewPolygonStore(), DefaultOptions())
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 64, cfg.Height)
}

func TestEncodeSVG(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Minify = false

	err := Encode(&buf, FormatSVG, 100, 100, nil, geo.NewPolygonStore(), opts)
	require.NoError(t, err)

	// grid only: the empty polygon stroke writes no path
	assert.Equal(t, 18, strings.Count(buf.String(), "<path"))
}

func TestEncodeUnknownFormat(t *testing.T) {
	err := Encode(&bytes.Buffer{}, "gif", 10, 10, nil, geo.NewPolygonStore(), DefaultOptions())
	assert.ErrorContains(t, err, "unsupported format")
}
