package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/earthmap/internal/projection"
)

func TestConvertForward(t *testing.T) {
	pr := projection.NewProjector(projection.Size{Width: 360, Height: 180}, projection.Equirectangular{})

	in := "# lon lat\n0 0\n\n-180,90\n180 -90 ignored\nnope 1\n5\n"
	results, skipped, err := convert(strings.NewReader(in), pr, false)
	require.NoError(t, err)

	assert.Equal(t, []Result{
		{Lon: 0, Lat: 0, X: 180, Y: 90},
		{Lon: -180, Lat: 90, X: 0, Y: 0},
		{Lon: 180, Lat: -90, X: 360, Y: 180},
	}, results)
	assert.Equal(t, []string{"nope 1", "5"}, skipped)
}

func TestConvertInverse(t *testing.T) {
	pr := projection.NewProjector(projection.Size{Width: 200, Height: 200}, projection.Azimuthal{})

	results, skipped, err := convert(strings.NewReader("100 100\n0 0\n"), pr, true)
	require.NoError(t, err)
	require.Empty(t, skipped)
	require.Len(t, results, 2)

	assert.InDelta(t, 90.0, results[0].Lat, 1e-9)
	assert.False(t, results[0].Outside)
	assert.True(t, results[1].Outside)
	assert.Equal(t, 0.0, results[1].X)
}

func TestConvertEmpty(t *testing.T) {
	pr := projection.NewProjector(projection.Size{Width: 1, Height: 1}, nil)
	results, skipped, err := convert(strings.NewReader(""), pr, false)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NotNil(t, results)
	assert.Empty(t, skipped)
}
