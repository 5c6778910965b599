package utmups_test

import (
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/mapgrid/utmups"
)

func newUPS(t *testing.T, hemisphere utmups.Hemisphere) *utmups.PolarStereographic {
	t.Helper()
	ps, err := utmups.NewPolarStereographic(utmups.WGS84.SemiMajorAxis, utmups.WGS84.Ecc2,
		0.994, hemisphere, 2000000, 2000000)
	require.NoError(t, err)
	return ps
}

// Worked examples from DMATM 8358.2 table 3-7, geographic to UPS.
func TestPolarStereographicDMAForward(t *testing.T) {
	tests := []struct {
		name       string
		hemisphere utmups.Hemisphere
		lat, lng   string
		northing   float64
		easting    float64
	}{
		{name: "north", hemisphere: utmups.HemisphereNorth,
			lat: "+84d17m14.042s", lng: "-132d14m52.761s",
			northing: 2426773.5955, easting: 1530125.7804},
		{name: "north low latitude", hemisphere: utmups.HemisphereNorth,
			lat: "+73d00m00.000s", lng: "+44d00m00.000s",
			northing: 632668.4313, easting: 3320416.7474},
		{name: "south", hemisphere: utmups.HemisphereSouth,
			lat: "-87d17m14.400s", lng: "+132d14m52.303s",
			northing: 1797474.8986, easting: 2222979.4663},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := newUPS(t, tt.hemisphere)
			geo := s2.LatLngFromDegrees(dmsDegrees(t, tt.lat), dmsDegrees(t, tt.lng))
			coords, err := ps.ConvertFromGeodetic(geo)
			require.NoError(t, err)
			assert.InDelta(t, tt.northing, coords.Northing, 0.001)
			assert.InDelta(t, tt.easting, coords.Easting, 0.001)
		})
	}
}

// Worked examples from DMATM 8358.2 table 3-7, UPS to geographic.
func TestPolarStereographicDMAInverse(t *testing.T) {
	tests := []struct {
		name                string
		hemisphere          utmups.Hemisphere
		northing, easting   float64
		latitude, longitude float64
	}{
		{name: "north", hemisphere: utmups.HemisphereNorth,
			northing: 2426773.60, easting: 1530125.78,
			latitude: 84.287233859, longitude: -132.247989447},
		{name: "north low latitude", hemisphere: utmups.HemisphereNorth,
			northing: 632668.43, easting: 3320416.75,
			latitude: 72.999999976, longitude: 44.000000031},
		{name: "south", hemisphere: utmups.HemisphereSouth,
			northing: 1500000.00, easting: 2500000.00,
			latitude: -83.637317561, longitude: 135.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := newUPS(t, tt.hemisphere)
			geo, err := ps.ConvertToGeodetic(utmups.MapCoords{Easting: tt.easting, Northing: tt.northing})
			require.NoError(t, err)
			assert.InDelta(t, tt.latitude, geo.Lat.Degrees(), 1e-8)
			assert.InDelta(t, tt.longitude, geo.Lng.Degrees(), 1e-8)
		})
	}
}

// The pole maps to the false origin and back, with longitude reported as
// zero on the way back.
func TestPolarStereographicPole(t *testing.T) {
	ps := newUPS(t, utmups.HemisphereNorth)

	coords, cs, err := ps.ConvertFromGeodeticWithScale(s2.LatLngFromDegrees(90, 57))
	require.NoError(t, err)
	assert.InDelta(t, 2000000, coords.Northing, 1e-9)
	assert.InDelta(t, 2000000, coords.Easting, 1e-9)
	assert.Equal(t, 0.994, cs.Scale)
	assert.Zero(t, cs.Convergence)

	geo, err := ps.ConvertToGeodetic(utmups.MapCoords{Easting: 2000000, Northing: 2000000})
	require.NoError(t, err)
	assert.InDelta(t, 90, geo.Lat.Degrees(), 1e-12)
	assert.Zero(t, geo.Lng)
}

func TestPolarStereographicConvergenceAndScale(t *testing.T) {
	north := newUPS(t, utmups.HemisphereNorth)
	_, cs, err := north.ConvertFromGeodeticWithScale(s2.LatLngFromDegrees(84, 30))
	require.NoError(t, err)
	assert.InDelta(t, 30, cs.Convergence.Degrees(), 1e-12)
	assert.Greater(t, cs.Scale, 0.994)
	assert.Less(t, cs.Scale, 1.0)

	south := newUPS(t, utmups.HemisphereSouth)
	_, cs, err = south.ConvertFromGeodeticWithScale(s2.LatLngFromDegrees(-84, 30))
	require.NoError(t, err)
	assert.InDelta(t, -30, cs.Convergence.Degrees(), 1e-12)
}

func TestPolarStereographicOppositeHemisphere(t *testing.T) {
	north := newUPS(t, utmups.HemisphereNorth)
	_, err := north.ConvertFromGeodetic(s2.LatLngFromDegrees(-20, 0))
	assert.Error(t, err)

	south := newUPS(t, utmups.HemisphereSouth)
	_, err = south.ConvertFromGeodetic(s2.LatLngFromDegrees(20, 0))
	assert.Error(t, err)
}

func TestNewPolarStereographicValidation(t *testing.T) {
	_, err := utmups.NewPolarStereographic(0, 0.0067, 0.994, utmups.HemisphereNorth, 0, 0)
	assert.Error(t, err)
	_, err = utmups.NewPolarStereographic(6378137, 1.0, 0.994, utmups.HemisphereNorth, 0, 0)
	assert.Error(t, err)
	_, err = utmups.NewPolarStereographic(6378137, 0.0067, 0.994, utmups.HemisphereInvalid, 0, 0)
	assert.Error(t, err)
	_, err = utmups.NewPolarStereographic(6378137, 0.0067, 20, utmups.HemisphereNorth, 0, 0)
	assert.Error(t, err)
}

func TestPolarStereographicRoundTrip(t *testing.T) {
	for _, hemisphere := range []utmups.Hemisphere{utmups.HemisphereNorth, utmups.HemisphereSouth} {
		ps := newUPS(t, hemisphere)
		sign := 1.0
		if hemisphere == utmups.HemisphereSouth {
			sign = -1.0
		}
		rapid.Check(t, func(rt *rapid.T) {
			lat := sign * rapid.Float64Range(60, 90).Draw(rt, "lat")
			lng := rapid.Float64Range(-179.9, 179.9).Draw(rt, "lng")
			geo := s2.LatLngFromDegrees(lat, lng)

			coords, err := ps.ConvertFromGeodetic(geo)
			require.NoError(rt, err)
			geo2, err := ps.ConvertToGeodetic(coords)
			require.NoError(rt, err)

			assert.InDelta(rt, geo.Lat.Radians(), geo2.Lat.Radians(), 1e-9)
			if lat != sign*90 {
				assert.InDelta(rt, geo.Lng.Radians(), geo2.Lng.Radians(), 1e-9)
			}
		})
	}
}
