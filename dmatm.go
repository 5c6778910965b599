package utmups

import (
	"errors"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// ErrNoConvergence is returned by the DMA inverse transverse Mercator
// conversion when the meridional-arc fixed-point iteration fails to reach
// its tolerance within the iteration cap. It only occurs for malformed
// inputs; on-ellipsoid northings converge in a handful of iterations.
var ErrNoConvergence = errors.New("meridional arc iteration did not converge")

// dmaInverseToleranceMeters is the ground tolerance for the iterative
// recovery of the footpoint latitude, per DMATM 8358.2.
const dmaInverseToleranceMeters = 0.001

// dmaMaxIterations caps the footpoint iteration. The reference algorithm
// loops unbounded; the cap guarantees termination on out-of-domain input.
const dmaMaxIterations = 20

// DMATransverseMercator converts between geodetic and transverse Mercator
// projection coordinates using the series of Defense Mapping Agency
// Technical Manual 8358.2. It is superseded by TransverseMercator but kept
// under its own entry points so historical outputs (the DMATM worked
// examples) can be reproduced bit for bit. The inverse conversion is
// iterative, unlike the closed-form Krüger inverse.
type DMATransverseMercator struct {
	// Ellipsoid Parameters
	semiMajorAxis float64
	ecc2          float64 // squared eccentricity
	ep2           float64 // second eccentricity squared e2/(1-e2)
	semiMinorAxis float64

	// Projection Parameters
	originLong    float64
	falseNorthing float64
	falseEasting  float64
	scaleFactor   float64

	// Meridional arc length coefficients (DMATM Ap..Ep)
	arcA float64
	arcB float64
	arcC float64
	arcD float64
	arcE float64
}

// NewDMATransverseMercator constructs a legacy DMA-series transverse
// Mercator converter. Parameters match NewTransverseMercator.
func NewDMATransverseMercator(semiMajorAxis, ecc2, scaleFactor, centralMeridian,
	falseNorthing, falseEasting float64) (*DMATransverseMercator, error) {
	if semiMajorAxis <= 0.0 {
		return nil, errors.New("semi-major axis must be greater than zero")
	}
	if ecc2 < 0 || ecc2 >= 1 {
		return nil, errors.New("squared eccentricity out of range")
	}
	const minScaleFactor = 0.1
	const maxScaleFactor = 10.0
	if (scaleFactor < minScaleFactor) || (scaleFactor > maxScaleFactor) {
		return nil, errors.New("scale factor out of range")
	}
	if (centralMeridian < -math.Pi) || (centralMeridian > 2*math.Pi) {
		return nil, errors.New("central meridian out of range")
	}
	if centralMeridian > math.Pi {
		centralMeridian -= 2 * math.Pi
	}

	f := 1.0 - math.Sqrt(1.0-ecc2)
	n := f / (2.0 - f)
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n

	a := semiMajorAxis
	return &DMATransverseMercator{
		semiMajorAxis: a,
		ecc2:          ecc2,
		ep2:           ecc2 / (1.0 - ecc2),
		semiMinorAxis: a * (1.0 - f),
		originLong:    centralMeridian,
		falseNorthing: falseNorthing,
		falseEasting:  falseEasting,
		scaleFactor:   scaleFactor,
		arcA:          a * (1 - n + 5*(n2-n3)/4 + 81*(n4-n5)/64),
		arcB:          3 * a * (n - n2 + 7*(n3-n4)/8 + 55*n5/64) / 2,
		arcC:          15 * a * (n2 - n3 + 3*(n4-n5)/4) / 16,
		arcD:          35 * a * (n3 - n4 + 11*n5/16) / 48,
		arcE:          315 * a * (n4 - n5) / 512,
	}, nil
}

// meridionalArc returns the arc length of the meridian from the equator to
// latitude phi. The sin(2k*phi) multiples come from double-angle identities
// rather than repeated Sin calls, matching the reference evaluation order.
func (t *DMATransverseMercator) meridionalArc(phi float64) float64 {
	s := math.Sin(phi)
	c := math.Cos(phi)
	s2phi := 2.0 * s * c
	c2phi := c*c - s*s
	s4phi := 2.0 * s2phi * c2phi
	c4phi := c2phi*c2phi - s2phi*s2phi
	s6phi := s4phi*c2phi + s2phi*c4phi
	s8phi := 2.0 * s4phi * c4phi
	return t.arcA*phi - t.arcB*s2phi + t.arcC*s4phi - t.arcD*s6phi + t.arcE*s8phi
}

// ConvertFromGeodetic converts geodetic coordinates to transverse Mercator
// easting and northing with the DMATM 8358.2 direct series (terms T1..T9).
func (t *DMATransverseMercator) ConvertFromGeodetic(geodeticCoordinates s2.LatLng) (MapCoords, error) {
	phi := geodeticCoordinates.Lat.Radians()
	if phi < -math.Pi/2 || phi > math.Pi/2 {
		return MapCoords{}, errors.New("latitude out of range")
	}
	dl := normalizeLongitude(geodeticCoordinates.Lng.Radians() - t.originLong)
	if math.Abs(dl) > maxLambda {
		return MapCoords{}, errors.New("longitude too far from central meridian")
	}

	s := math.Sin(phi)
	c := math.Cos(phi)
	sin2 := s * s
	c2 := c * c
	c4 := c2 * c2
	c6 := c4 * c2

	nu := t.semiMajorAxis / math.Sqrt(1-t.ecc2*sin2)
	k0 := t.scaleFactor
	nuck0 := nu * c * k0
	nusck0 := nu * s * c * k0

	tn := s / c
	t2 := tn * tn
	t4 := t2 * t2
	t6 := t4 * t2

	epc2 := t.ep2 * c2
	epc4 := epc2 * epc2
	epc6 := epc4 * epc2
	epc8 := epc6 * epc2

	T1 := t.meridionalArc(phi) * k0
	T2 := nusck0 / 2
	T3 := nusck0 * c2 * (5 - t2 + 9*epc2 + 4*epc4) / 24
	T4 := nusck0 * c4 * (61 - 58*t2 + t4 + 270*epc2 - 330*t2*epc2 +
		445*epc4 + 324*epc6 - 680*t2*epc4 +
		88*epc8 - 660*t2*epc6 - 192*t2*epc8) / 720
	T5 := nusck0 * c6 * (1385 - 3111*t2 + 543*t4 - t6) / 40320

	T6 := nuck0
	T7 := nuck0 * c2 * (1 - t2 + epc2) / 6
	T8 := nuck0 * c4 * (5 - 18*t2 + t4 + 14*epc2 - 58*t2*epc2 + 13*epc4 +
		4*epc6 - 64*t2*epc4 - 24*t2*epc6) / 120
	T9 := nuck0 * c6 * (61 - 479*t2 + 179*t4 - t6) / 5040

	dl2 := dl * dl
	dl4 := dl2 * dl2
	dl6 := dl4 * dl2
	dl8 := dl6 * dl2

	return MapCoords{
		Northing: t.falseNorthing + T1 + dl2*T2 + dl4*T3 + dl6*T4 + dl8*T5,
		Easting:  t.falseEasting + dl*(T6+dl2*T7+dl4*T8+dl6*T9),
	}, nil
}

// ConvertToGeodetic converts transverse Mercator easting and northing back
// to geodetic coordinates. The footpoint latitude (the latitude on the
// central meridian with the same northing) is found by fixed-point
// iteration on the meridional arc length to dmaInverseToleranceMeters, then
// the DMATM correction series (terms T10..T17) recovers the final position.
func (t *DMATransverseMercator) ConvertToGeodetic(coordinates MapCoords) (s2.LatLng, error) {
	x := coordinates.Easting - t.falseEasting
	y := coordinates.Northing - t.falseNorthing
	k0 := t.scaleFactor

	phi := y / t.semiMinorAxis / k0
	for i := 0; ; i++ {
		arc := t.meridionalArc(phi) * k0
		if math.Abs(arc-y) < dmaInverseToleranceMeters {
			break
		}
		if i >= dmaMaxIterations {
			return s2.LatLng{}, ErrNoConvergence
		}
		phi *= y / arc
	}

	s := math.Sin(phi)
	c := math.Cos(phi)
	sin2 := s * s
	c2 := c * c

	nu := t.semiMajorAxis / math.Sqrt(1-t.ecc2*sin2)
	rho := nu / (1 - t.ecc2*sin2) * (1 - t.ecc2)

	tn := s / c
	t2 := tn * tn
	t4 := t2 * t2
	t6 := t4 * t2

	nuk0 := nu * k0
	nuk02 := nuk0 * nuk0
	nuk04 := nuk02 * nuk02
	nuk06 := nuk04 * nuk02

	tOverRho := tn / (rho * nuk0 * k0)
	secOverNu := 1 / (nu * c * k0)

	epc2 := t.ep2 * c2
	epc4 := epc2 * epc2
	epc6 := epc4 * epc2
	epc8 := epc6 * epc2

	T10 := tOverRho / 2
	T11 := tOverRho / nuk02 * (5 + 3*t2 + epc2 - 4*epc4 - 9*t2*epc2) / 24
	T12 := tOverRho / nuk04 * (61 + 90*t2 + 46*epc2 + 45*t4 - 252*t2*epc2 -
		3*epc4 + 100*epc6 - 66*t2*epc4 -
		90*t4*epc2 + 88*epc8 + 225*t4*epc4 +
		84*t2*epc6 - 192*t2*epc8) / 720
	T13 := tOverRho / nuk06 * (1385 + 3633*t2 + 4095*t4 + 1575*t6) / 40320

	T14 := secOverNu
	T15 := secOverNu / nuk02 * (1 + 2*t2 + epc2) / 6
	T16 := secOverNu / nuk04 * (5 + 6*epc2 + 28*t2 - 3*epc4 + 8*t2*epc2 +
		24*t4 - 4*epc6 + 4*t2*epc4 + 24*t2*epc6) / 120
	T17 := secOverNu / nuk06 * (61 + 662*t2 + 1320*t4 + 720*t6) / 5040

	x2 := x * x
	x4 := x2 * x2
	x6 := x4 * x2
	x8 := x6 * x2

	latitude := phi - x2*T10 + x4*T11 - x6*T12 + x8*T13
	longitude := normalizeLongitude(t.originLong + x*(T14-x2*T15+x4*T16-x6*T17))

	if math.Abs(latitude) > math.Pi/2 {
		return s2.LatLng{}, errors.New("northing out of range")
	}
	return s2.LatLng{Lat: s1.Angle(latitude), Lng: s1.Angle(longitude)}, nil
}
