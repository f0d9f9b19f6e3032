package projection

// Equirectangular maps longitude [-180, 180] linearly onto x [0, width] and
// latitude [-90, 90] onto y [height, 0], north at the top.
type Equirectangular struct{}

func (Equirectangular) Name() string { return NameEquirectangular }

func (Equirectangular) Forward(lon, lat, width, height float64) Point {
	return Point{
		X: width * ((lon + 180.0) / 360.0),
		Y: height * ((180.0 - lat - 90.0) / 180.0),
	}
}

// Inverse never reports Outside.
func (Equirectangular) Inverse(x, y, width, height float64) Location {
	return Location{
		Lon: 360.0*(x/width) - 180.0,
		Lat: 180.0*(1-y/height) - 90.0,
	}
}
