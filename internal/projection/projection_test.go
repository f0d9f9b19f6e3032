package projection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-9

func TestForName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"equirectangular", NameEquirectangular},
		{"azimuthal", NameAzimuthal},
		{"polar", NameAzimuthal},
		{"", NameAzimuthal},
		{"Equirectangular", NameAzimuthal}, // names are case sensitive
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForName(tt.name).Name())
		})
	}
}

func TestEquirectangularKnownValues(t *testing.T) {
	p := Equirectangular{}
	tests := []struct {
		lon, lat float64
		want     Point
	}{
		{0, 0, Point{180, 90}},
		{-180, 90, Point{0, 0}},
		{180, -90, Point{360, 180}},
		{90, 45, Point{270, 45}},
	}
	for _, tt := range tests {
		got := p.Forward(tt.lon, tt.lat, 360, 180)
		assert.InDelta(t, tt.want.X, got.X, tol, "Forward(%v, %v).X", tt.lon, tt.lat)
		assert.InDelta(t, tt.want.Y, got.Y, tol, "Forward(%v, %v).Y", tt.lon, tt.lat)
	}
}

func TestAzimuthalKnownValues(t *testing.T) {
	p := Azimuthal{}

	// 200x200: radius 96, center (100, 100)
	got := p.Forward(0, 90, 200, 200)
	assert.InDelta(t, 100.0, got.X, tol)
	assert.InDelta(t, 100.0, got.Y, tol)

	got = p.Forward(0, -90, 200, 200)
	assert.InDelta(t, 196.0, got.X, tol)
	assert.InDelta(t, 100.0, got.Y, tol)

	got = p.Forward(90, 0, 200, 200)
	assert.InDelta(t, 100.0, got.X, tol)
	assert.InDelta(t, 148.0, got.Y, tol)

	// shorter side drives the radius
	got = p.Forward(180, -90, 400, 100)
	assert.InDelta(t, 200.0-48.0, got.X, tol)
	assert.InDelta(t, 50.0, got.Y, 1e-6)
}

func TestAzimuthalForwardNotClamped(t *testing.T) {
	got := Azimuthal{}.Forward(0, -150, 200, 200)
	assert.InDelta(t, 100.0+96.0*240.0/180.0, got.X, tol)
}

func TestEquirectangularRoundTrip(t *testing.T) {
	p := Equirectangular{}
	const w, h = 640.0, 320.0

	for x := 0.0; x <= w; x += 32 {
		for y := 0.0; y <= h; y += 16 {
			loc := p.Inverse(x, y, w, h)
			assert.False(t, loc.Outside)

			back := p.Forward(loc.Lon, loc.Lat, w, h)
			assert.InDelta(t, x, back.X, 1e-6)
			assert.InDelta(t, y, back.Y, 1e-6)
		}
	}
}

func TestAzimuthalRoundTripInsideDisk(t *testing.T) {
	p := Azimuthal{}
	const w, h = 300.0, 200.0
	radius := RadiusScale * h

	for x := 0.0; x <= w; x += 5 {
		for y := 0.0; y <= h; y += 5 {
			if math.Hypot(x-w/2, y-h/2) > radius {
				continue
			}
			loc := p.Inverse(x, y, w, h)
			assert.False(t, loc.Outside, "(%v, %v) is inside the disk", x, y)

			back := p.Forward(loc.Lon, loc.Lat, w, h)
			assert.InDelta(t, x, back.X, 1e-6)
			assert.InDelta(t, y, back.Y, 1e-6)
		}
	}
}

func TestAzimuthalOutside(t *testing.T) {
	p := Azimuthal{}

	// corners of a 200x200 surface are ~141px from the center, radius is 96
	for _, pt := range []Point{{0, 0}, {200, 0}, {0, 200}, {200, 200}, {197, 100}} {
		loc := p.Inverse(pt.X, pt.Y, 200, 200)
		assert.True(t, loc.Outside, "(%v, %v)", pt.X, pt.Y)
		assert.Less(t, loc.Lat, -90.0)
	}

	rim := p.Inverse(196, 100, 200, 200)
	assert.False(t, rim.Outside)
	assert.InDelta(t, -90.0, rim.Lat, tol)
}

func TestAzimuthalInverseAngles(t *testing.T) {
	p := Azimuthal{}

	loc := p.Inverse(100, 148, 200, 200)
	assert.InDelta(t, 90.0, loc.Lon, tol)
	assert.InDelta(t, 0.0, loc.Lat, tol)

	loc = p.Inverse(100, 52, 200, 200)
	assert.InDelta(t, -90.0, loc.Lon, tol)

	loc = p.Inverse(52, 100, 200, 200)
	assert.InDelta(t, 180.0, loc.Lon, tol)
}
