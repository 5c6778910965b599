package utmups_test

import (
	"math"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/mapgrid/utmups"
)

func s1Angle(deg float64) s1.Angle { return s1.Angle(deg) * s1.Degree }

// International 1924 ellipsoid, used by the DMATM 8358.2 worked examples.
const (
	international1924A    = 6378388.0
	international1924Ecc2 = 0.006722670022333322
)

func zoneCentralMeridian(zone int) float64 {
	return (float64(zone-1)*6 - 180 + 3) * math.Pi / 180
}

func newUTMZone(t *testing.T, a, ecc2 float64, zone int, falseNorthing float64) *utmups.TransverseMercator {
	t.Helper()
	tm, err := utmups.NewTransverseMercator(a, ecc2, 0.9996,
		zoneCentralMeridian(zone), falseNorthing, 500000)
	require.NoError(t, err)
	return tm
}

func dmsDegrees(t *testing.T, s string) float64 {
	t.Helper()
	a, err := utmups.ParseDMS(s)
	require.NoError(t, err)
	return a.Degrees()
}

// Worked examples from DMATM 8358.2 table 2-11, geographic to UTM.
func TestTransverseMercatorDMAForward(t *testing.T) {
	tests := []struct {
		name        string
		zone        int
		lat, lng    string
		northing    float64
		easting     float64
		convergence string
		scale       float64
	}{
		{
			name: "on central meridian", zone: 38,
			lat: "+73d00m00.000s", lng: "+45d00m00.000s",
			northing: 8100702.8967, easting: 500000.0000,
			convergence: "+000:00:00.000", scale: 0.999600000,
		},
		{
			name: "east of central meridian", zone: 47,
			lat: "+30d00m00.000s", lng: "+102d00m00.000s",
			northing: 3322624.3501, easting: 789422.0697,
			convergence: "+001:30:03.760", scale: 1.000633539,
		},
		{
			name: "west of central meridian", zone: 48,
			lat: "+30d00m00.000s", lng: "+102d00m00.000s",
			northing: 3322624.3501, easting: 210577.9303,
			convergence: "-001:30:03.760", scale: 1.000633539,
		},
		{
			name: "western hemisphere", zone: 12,
			lat: "+72d04m32.110s", lng: "-113d54m43.321s",
			northing: 8000000.0087, easting: 399999.9968,
			convergence: "-002:46:15.310", scale: 0.999722280,
		},
		{
			name: "western hemisphere adjacent zone", zone: 11,
			lat: "+72d04m32.110s", lng: "-113d54m43.321s",
			northing: 8000301.0367, easting: 606036.9725,
			convergence: "+002:56:18.084", scale: 0.999737490,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := newUTMZone(t, international1924A, international1924Ecc2, tt.zone, 0)
			geo := s2.LatLngFromDegrees(dmsDegrees(t, tt.lat), dmsDegrees(t, tt.lng))

			coords, cs, err := tm.ConvertFromGeodeticWithScale(geo)
			require.NoError(t, err)
			assert.InDelta(t, tt.northing, coords.Northing, 0.001)
			assert.InDelta(t, tt.easting, coords.Easting, 0.001)
			assert.InDelta(t, dmsDegrees(t, tt.convergence), cs.Convergence.Degrees(), 1e-6)
			assert.InDelta(t, tt.scale, cs.Scale, 1e-8)

			// The plain conversion must agree with the scaled one.
			plain, err := tm.ConvertFromGeodetic(geo)
			require.NoError(t, err)
			assert.Equal(t, coords, plain)
		})
	}
}

// Worked examples from DMATM 8358.2 table 2-11, UTM to geographic.
func TestTransverseMercatorDMAInverse(t *testing.T) {
	tests := []struct {
		name                string
		zone                int
		falseNorthing       float64
		northing, easting   float64
		latitude, longitude float64
	}{
		{name: "west of central meridian", zone: 48, northing: 3322824.35, easting: 210577.93,
			latitude: 30.001802399, longitude: 101.999945733},
		{name: "east of central meridian", zone: 47, northing: 3322824.08, easting: 789411.59,
			latitude: 30.001802441, longitude: 101.999945686},
		{name: "near equator", zone: 31, northing: 1000000.00, easting: 200000.00,
			latitude: 9.036307239, longitude: 0.271416348},
		{name: "near equator adjacent zone", zone: 30, northing: 1000491.75, easting: 859739.88,
			latitude: 9.036307277, longitude: 0.271416304},
		{name: "high latitude on central meridian", zone: 43, northing: 9000000.00, easting: 500000.00,
			latitude: 81.058468479, longitude: 75.0},
		{name: "southern hemisphere", zone: 30, falseNorthing: 10000000, northing: 4000000.00, easting: 700000.00,
			latitude: -54.108053260, longitude: 0.059359731},
		{name: "southern hemisphere adjacent zone", zone: 31, falseNorthing: 10000000, northing: 4000329.42, easting: 307758.89,
			latitude: -54.108053246, longitude: 0.059359701},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := newUTMZone(t, international1924A, international1924Ecc2, tt.zone, tt.falseNorthing)
			geo, err := tm.ConvertToGeodetic(utmups.MapCoords{Easting: tt.easting, Northing: tt.northing})
			require.NoError(t, err)
			assert.InDelta(t, tt.latitude, geo.Lat.Degrees(), 1e-8)
			assert.InDelta(t, tt.longitude, geo.Lng.Degrees(), 1e-8)
		})
	}
}

func TestTransverseMercatorWGS84(t *testing.T) {
	tm := newUTMZone(t, utmups.WGS84.SemiMajorAxis, utmups.WGS84.Ecc2, 11, 0)

	coords, cs, err := tm.ConvertFromGeodeticWithScale(s2.LatLngFromDegrees(32, -120))
	require.NoError(t, err)
	assert.InDelta(t, 3544369.9095, coords.Northing, 0.001)
	assert.InDelta(t, 216576.7735, coords.Easting, 0.001)
	assert.InDelta(t, -1.590818552, cs.Convergence.Degrees(), 1e-8)
	assert.InDelta(t, 1.000590785, cs.Scale, 1e-8)

	geo, err := tm.ConvertToGeodetic(utmups.MapCoords{Easting: 216577.22, Northing: 3544404.13})
	require.NoError(t, err)
	assert.InDelta(t, 32.000308418, geo.Lat.Degrees(), 1e-8)
	assert.InDelta(t, -120.000005327, geo.Lng.Degrees(), 1e-8)
}

// On the central meridian the point scale factor is exactly k0 and the
// convergence vanishes.
func TestTransverseMercatorCentralMeridian(t *testing.T) {
	tm := newUTMZone(t, utmups.WGS84.SemiMajorAxis, utmups.WGS84.Ecc2, 31, 0)

	coords, cs, err := tm.ConvertFromGeodeticWithScale(s2.LatLngFromDegrees(45, 3))
	require.NoError(t, err)
	assert.InDelta(t, 0.9996, cs.Scale, 1e-12)
	assert.InDelta(t, 0, cs.Convergence.Radians(), 1e-15)
	assert.InDelta(t, 500000, coords.Easting, 1e-6)
	assert.InDelta(t, 4982950.400227, coords.Northing, 0.001)
}

// A local survey grid: scale factor one, no false origin, northing measured
// from a reference parallel rather than the equator.
func TestTransverseMercatorLocalGrid(t *testing.T) {
	const originLat, originLng = 32.0, -120.0
	cm := originLng * math.Pi / 180

	ref, err := utmups.NewTransverseMercator(utmups.WGS84.SemiMajorAxis, utmups.WGS84.Ecc2,
		1, cm, 0, 0)
	require.NoError(t, err)
	origin, err := ref.ConvertFromGeodetic(s2.LatLngFromDegrees(originLat, originLng))
	require.NoError(t, err)
	assert.InDelta(t, 3541852.434257, origin.Northing, 0.001)
	assert.InDelta(t, 0, origin.Easting, 1e-6)

	// With a unit scale factor the projection is true scale on the
	// central meridian.
	_, cs, err := ref.ConvertFromGeodeticWithScale(s2.LatLngFromDegrees(originLat, originLng))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, cs.Scale, 1e-9)

	local, err := utmups.NewTransverseMercator(utmups.WGS84.SemiMajorAxis, utmups.WGS84.Ecc2,
		1, cm, -origin.Northing, 0)
	require.NoError(t, err)
	geo, err := local.ConvertToGeodetic(utmups.MapCoords{Easting: 300.50, Northing: 150.22})
	require.NoError(t, err)
	assert.InDelta(t, 32.001354675, geo.Lat.Degrees(), 1e-8)
	assert.InDelta(t, -119.996819828, geo.Lng.Degrees(), 1e-8)
}

func TestTransverseMercatorRoundTrip(t *testing.T) {
	tm := newUTMZone(t, utmups.WGS84.SemiMajorAxis, utmups.WGS84.Ecc2, 31, 0)

	rapid.Check(t, func(rt *rapid.T) {
		lat := rapid.Float64Range(-89.9, 89.9).Draw(rt, "lat")
		lng := rapid.Float64Range(3-3.5, 3+3.5).Draw(rt, "lng")
		geo := s2.LatLngFromDegrees(lat, lng)

		coords, err := tm.ConvertFromGeodetic(geo)
		require.NoError(t, err)
		geo2, err := tm.ConvertToGeodetic(coords)
		require.NoError(t, err)

		assert.InDelta(t, geo.Lat.Radians(), geo2.Lat.Radians(), 1e-9)
		assert.InDelta(t, geo.Lng.Radians(), geo2.Lng.Radians(), 1e-9)
	})
}

func TestNewTransverseMercatorValidation(t *testing.T) {
	_, err := utmups.NewTransverseMercator(0, 0.0067, 0.9996, 0, 0, 0)
	assert.Error(t, err)
	_, err = utmups.NewTransverseMercator(6378137, -0.1, 0.9996, 0, 0, 0)
	assert.Error(t, err)
	_, err = utmups.NewTransverseMercator(6378137, 1.0, 0.9996, 0, 0, 0)
	assert.Error(t, err)
	_, err = utmups.NewTransverseMercator(6378137, 0.0067, 0.05, 0, 0, 0)
	assert.Error(t, err)
	_, err = utmups.NewTransverseMercator(6378137, 0.0067, 0.9996, -4, 0, 0)
	assert.Error(t, err)
}

func TestTransverseMercatorRangeErrors(t *testing.T) {
	tm := newUTMZone(t, utmups.WGS84.SemiMajorAxis, utmups.WGS84.Ecc2, 31, 0)

	// Far from the central meridian the series is meaningless.
	_, err := tm.ConvertFromGeodetic(s2.LatLng{Lat: 0, Lng: s1Angle(120)})
	assert.Error(t, err)

	_, err = tm.ConvertFromGeodetic(s2.LatLng{Lat: s1Angle(91), Lng: s1Angle(3)})
	assert.Error(t, err)
}
