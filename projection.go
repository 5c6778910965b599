// Package utmups converts between geodetic coordinates (latitude and
// longitude on a reference ellipsoid or sphere) and the planar grid
// coordinates of the Universal Transverse Mercator and Universal Polar
// Stereographic systems.
//
// The low-level projection converters (TransverseMercator,
// DMATransverseMercator, PolarStereographic and their spherical
// counterparts) operate on arbitrary projection parameters. The Grid
// converter layers the UTM/UPS zone and hemisphere conventions on top of
// them, including automatic zone selection with the Norway and Svalbard
// exceptions.
//
// All converters are immutable after construction and safe for concurrent
// use. Angles are radians internally, carried as s2.LatLng; distances are
// meters.
package utmups

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// nTerms is the truncation order of the Krüger correction series.
const nTerms = 4

// MapCoords is a planar projected coordinate in meters, relative to the
// projection's false origin.
type MapCoords struct {
	Easting  float64
	Northing float64
}

// Hemisphere represents the hemisphere, north or south.
type Hemisphere byte

// Hemisphere constants
const (
	HemisphereInvalid Hemisphere = iota
	HemisphereNorth
	HemisphereSouth
)

func (h Hemisphere) String() string {
	switch h {
	case HemisphereNorth:
		return "N"
	case HemisphereSouth:
		return "S"
	}
	return "?"
}

// ConvergenceAndScale reports the grid convergence (angle from true north to
// grid north at a point) and the point scale factor (ratio of grid distance
// to ground distance, exactly k0 on a transverse Mercator central meridian).
type ConvergenceAndScale struct {
	Convergence s1.Angle
	Scale       float64
}

// Projection converts between geodetic and projected planar coordinates for
// one fixed set of projection parameters. The Krüger and DMA transverse
// Mercator converters are two implementations of the same capability;
// callers pick one explicitly.
type Projection interface {
	ConvertFromGeodetic(geodeticCoordinates s2.LatLng) (MapCoords, error)
	ConvertToGeodetic(coordinates MapCoords) (s2.LatLng, error)
}

// ScaledProjection is implemented by projections that can also report grid
// convergence and point scale alongside the forward conversion.
type ScaledProjection interface {
	Projection
	ConvertFromGeodeticWithScale(geodeticCoordinates s2.LatLng) (MapCoords, ConvergenceAndScale, error)
}

// poly4 evaluates c0 + c1*x + c2*x^2 + c3*x^3 + c4*x^4 by Horner's rule.
func poly4(x, c0, c1, c2, c3, c4 float64) float64 {
	return c0 + x*(c1+x*(c2+x*(c3+x*c4)))
}

// normalizeLongitude wraps an angle into (-pi, pi].
func normalizeLongitude(lon float64) float64 {
	if lon > math.Pi || lon < -math.Pi {
		lon = math.Mod(math.Mod(lon, 2*math.Pi)+2*math.Pi, 2*math.Pi)
		if lon > math.Pi {
			lon -= 2 * math.Pi
		}
	}
	return lon
}

func computeHyperbolicSeries(twoX float64, c2kx, s2kx *[nTerms]float64) {
	// Use identities to compute
	// c2kx[k] = cosh(2(k+1)X), s2kx[k] = sinh(2(k+1)X) for k = 0 .. 3
	c2kx[0] = math.Cosh(twoX)
	s2kx[0] = math.Sinh(twoX)
	c2kx[1] = 2.0*c2kx[0]*c2kx[0] - 1.0
	s2kx[1] = 2.0 * c2kx[0] * s2kx[0]
	c2kx[2] = c2kx[0]*c2kx[1] + s2kx[0]*s2kx[1]
	s2kx[2] = c2kx[1]*s2kx[0] + c2kx[0]*s2kx[1]
	c2kx[3] = 2.0*c2kx[1]*c2kx[1] - 1.0
	s2kx[3] = 2.0 * c2kx[1] * s2kx[1]
}

func computeTrigSeries(twoY float64, c2ky, s2ky *[nTerms]float64) {
	// Use identities to compute
	// c2ky[k] = cos(2(k+1)Y), s2ky[k] = sin(2(k+1)Y) for k = 0 .. 3
	c2ky[0] = math.Cos(twoY)
	s2ky[0] = math.Sin(twoY)
	c2ky[1] = 2.0*c2ky[0]*c2ky[0] - 1.0
	s2ky[1] = 2.0 * c2ky[0] * s2ky[0]
	c2ky[2] = c2ky[1]*c2ky[0] - s2ky[1]*s2ky[0]
	s2ky[2] = c2ky[1]*s2ky[0] + c2ky[0]*s2ky[1]
	c2ky[3] = 2.0*c2ky[1]*c2ky[1] - 1.0
	s2ky[3] = 2.0 * c2ky[1] * s2ky[1]
}
