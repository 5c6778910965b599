package utmups

import (
	"errors"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// TransverseMercator converts between geodetic coordinates and transverse
// Mercator projection coordinates on an ellipsoid, using the closed-form
// Krüger series in the third flattening n, truncated at 4th order (Karney
// 2011; Kawase 2011, 2013). Forward and inverse are both explicit finite
// series: no iteration, sub-millimeter accuracy across a UTM zone width.
type TransverseMercator struct {
	// Ellipsoid Parameters
	semiMajorAxis float64
	ecc2          float64 // squared eccentricity

	// Projection Parameters
	originLong    float64 // Central meridian in radians
	falseNorthing float64 // False northing in meters
	falseEasting  float64 // False easting in meters
	scaleFactor   float64 // Scale factor on the central meridian

	n       float64 // third flattening f/(2-f)
	tFactor float64 // 2*sqrt(n)/(1+n), conformal latitude factor
	k0A     float64 // scaleFactor * rectifying radius
	k0AInv  float64 // 1/k0A

	aCoeff [nTerms]float64 // forward correction series
	bCoeff [nTerms]float64 // inverse correction series
	dCoeff [nTerms]float64 // conformal to geodetic latitude series
}

// maxLambda is the largest accepted offset from the central meridian. The
// series is rated for a zone half-width plus overlap; beyond this the
// conformal mapping itself degenerates.
const maxLambda = (70.0 * math.Pi) / 180.0

// NewTransverseMercator constructs a transverse Mercator converter for an
// ellipsoid with semi-major axis a (meters) and squared eccentricity ecc2.
// The central meridian is in radians; false northing/easting in meters.
func NewTransverseMercator(semiMajorAxis, ecc2, scaleFactor, centralMeridian,
	falseNorthing, falseEasting float64) (*TransverseMercator, error) {
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

	t := &TransverseMercator{
		semiMajorAxis: semiMajorAxis,
		ecc2:          ecc2,
		originLong:    centralMeridian,
		falseNorthing: falseNorthing,
		falseEasting:  falseEasting,
		scaleFactor:   scaleFactor,
	}

	f := 1.0 - math.Sqrt(1.0-ecc2)
	n := f / (2.0 - f)
	t.n = n
	t.tFactor = 2.0 * math.Sqrt(n) / (1.0 + n)

	// Rectifying radius A = a/(1+n) * (1 + n^2/4 + n^4/64 + ...)
	A := semiMajorAxis / (1.0 + n) * poly4(n*n, 1.0, 1.0/4, 1.0/64, 1.0/256, 25.0/16384)
	t.k0A = scaleFactor * A
	t.k0AInv = 1.0 / t.k0A

	t.aCoeff[0] = poly4(n, 0, 1.0/2, -2.0/3, 5.0/16, 41.0/180)
	t.aCoeff[1] = poly4(n, 0, 0, 13.0/48, -3.0/5, 557.0/1440)
	t.aCoeff[2] = poly4(n, 0, 0, 0, 61.0/240, -103.0/140)
	t.aCoeff[3] = poly4(n, 0, 0, 0, 0, 49561.0/161280)

	t.bCoeff[0] = poly4(n, 0, 1.0/2, -2.0/3, 37.0/96, -1.0/360)
	t.bCoeff[1] = poly4(n, 0, 0, 1.0/48, 1.0/15, -437.0/1440)
	t.bCoeff[2] = poly4(n, 0, 0, 0, 17.0/480, -37.0/840)
	t.bCoeff[3] = poly4(n, 0, 0, 0, 0, 4397.0/161280)

	t.dCoeff[0] = poly4(n, 0, 2.0, -2.0/3, -2.0, 116.0/45)
	t.dCoeff[1] = poly4(n, 0, 0, 7.0/3, -8.0/5, -227.0/45)
	t.dCoeff[2] = poly4(n, 0, 0, 0, 56.0/15, -136.0/35)
	t.dCoeff[3] = poly4(n, 0, 0, 0, 0, 4279.0/630)

	return t, nil
}

// gaussCoords maps geodetic latitude and longitude-from-meridian to
// Gauss-Schreiber coordinates (xi, eta) on the conformal sphere, returning
// also the conformal tangent used by the convergence and scale formulas.
func (t *TransverseMercator) gaussCoords(latitude, lambda float64) (xi, eta, tanChi float64, err error) {
	if latitude < -math.Pi/2 || latitude > math.Pi/2 {
		return 0, 0, 0, errors.New("latitude out of range")
	}
	if math.Abs(lambda) > maxLambda {
		return 0, 0, 0, errors.New("longitude too far from central meridian")
	}

	sinPhi := math.Sin(latitude)
	tanChi = math.Sinh(math.Atanh(sinPhi) - t.tFactor*math.Atanh(t.tFactor*sinPhi))
	xi = math.Atan2(tanChi, math.Cos(lambda))
	eta = math.Atanh(math.Sin(lambda) / math.Sqrt(1.0+tanChi*tanChi))
	return xi, eta, tanChi, nil
}

// ConvertFromGeodetic converts geodetic (latitude and longitude) coordinates
// to transverse Mercator projection (easting and northing) coordinates.
func (t *TransverseMercator) ConvertFromGeodetic(geodeticCoordinates s2.LatLng) (MapCoords, error) {
	latitude := geodeticCoordinates.Lat.Radians()
	lambda := normalizeLongitude(geodeticCoordinates.Lng.Radians() - t.originLong)

	xi, eta, _, err := t.gaussCoords(latitude, lambda)
	if err != nil {
		return MapCoords{}, err
	}

	var c2kxi, s2kxi, c2keta, s2keta [nTerms]float64
	computeTrigSeries(2.0*xi, &c2kxi, &s2kxi)
	computeHyperbolicSeries(2.0*eta, &c2keta, &s2keta)

	xiStar := xi
	etaStar := eta
	for k := nTerms - 1; k >= 0; k-- {
		xiStar += t.aCoeff[k] * s2kxi[k] * c2keta[k]
		etaStar += t.aCoeff[k] * c2kxi[k] * s2keta[k]
	}

	return MapCoords{
		Easting:  t.falseEasting + t.k0A*etaStar,
		Northing: t.falseNorthing + t.k0A*xiStar,
	}, nil
}

// ConvertFromGeodeticWithScale is ConvertFromGeodetic plus the grid
// convergence and point scale at the input point, derived from the
// derivatives of the correction series with respect to xi and eta.
func (t *TransverseMercator) ConvertFromGeodeticWithScale(geodeticCoordinates s2.LatLng) (MapCoords, ConvergenceAndScale, error) {
	latitude := geodeticCoordinates.Lat.Radians()
	lambda := normalizeLongitude(geodeticCoordinates.Lng.Radians() - t.originLong)

	xi, eta, tanChi, err := t.gaussCoords(latitude, lambda)
	if err != nil {
		return MapCoords{}, ConvergenceAndScale{}, err
	}

	var c2kxi, s2kxi, c2keta, s2keta [nTerms]float64
	computeTrigSeries(2.0*xi, &c2kxi, &s2kxi)
	computeHyperbolicSeries(2.0*eta, &c2keta, &s2keta)

	xiStar := xi
	etaStar := eta
	sigma := 1.0
	tau := 0.0
	for k := nTerms - 1; k >= 0; k-- {
		xiStar += t.aCoeff[k] * s2kxi[k] * c2keta[k]
		etaStar += t.aCoeff[k] * c2kxi[k] * s2keta[k]
		sigma += 2.0 * float64(k+1) * t.aCoeff[k] * c2kxi[k] * c2keta[k]
		tau += 2.0 * float64(k+1) * t.aCoeff[k] * s2kxi[k] * s2keta[k]
	}

	secChi := math.Sqrt(1.0 + tanChi*tanChi)
	tanLam := math.Tan(lambda)
	convergence := math.Atan((tau*secChi + sigma*tanChi*tanLam) /
		(sigma*secChi - tau*tanChi*tanLam))

	tanRatio := (1.0 - t.n) / (1.0 + t.n) * math.Tan(latitude)
	cosLam := math.Cos(lambda)
	scale := t.k0A / t.semiMajorAxis *
		math.Sqrt((1.0+tanRatio*tanRatio)*(sigma*sigma+tau*tau)/
			(tanChi*tanChi+cosLam*cosLam))

	coords := MapCoords{
		Easting:  t.falseEasting + t.k0A*etaStar,
		Northing: t.falseNorthing + t.k0A*xiStar,
	}
	return coords, ConvergenceAndScale{Convergence: s1.Angle(convergence), Scale: scale}, nil
}

// ConvertToGeodetic converts transverse Mercator projection (easting and
// northing) coordinates to geodetic (latitude and longitude) coordinates.
// The inverse is closed-form: the correction series is inverted with its own
// coefficient set, then the conformal latitude is mapped back to geodetic
// latitude by a second fixed series.
func (t *TransverseMercator) ConvertToGeodetic(coordinates MapCoords) (s2.LatLng, error) {
	xi := (coordinates.Northing - t.falseNorthing) * t.k0AInv
	eta := (coordinates.Easting - t.falseEasting) * t.k0AInv

	var c2kxi, s2kxi, c2keta, s2keta [nTerms]float64
	computeTrigSeries(2.0*xi, &c2kxi, &s2kxi)
	computeHyperbolicSeries(2.0*eta, &c2keta, &s2keta)

	xiPrime := xi
	etaPrime := eta
	for k := nTerms - 1; k >= 0; k-- {
		xiPrime -= t.bCoeff[k] * s2kxi[k] * c2keta[k]
		etaPrime -= t.bCoeff[k] * c2kxi[k] * s2keta[k]
	}

	sinChi := math.Sin(xiPrime) / math.Cosh(etaPrime)
	if sinChi < -1 || sinChi > 1 {
		return s2.LatLng{}, errors.New("northing out of range")
	}
	chi := math.Asin(sinChi)

	var c2kchi, s2kchi [nTerms]float64
	computeTrigSeries(2.0*chi, &c2kchi, &s2kchi)
	latitude := chi
	for k := nTerms - 1; k >= 0; k-- {
		latitude += t.dCoeff[k] * s2kchi[k]
	}

	lambda := math.Atan2(math.Sinh(etaPrime), math.Cos(xiPrime))
	longitude := normalizeLongitude(t.originLong + lambda)

	if math.Abs(latitude) > math.Pi/2 {
		return s2.LatLng{}, errors.New("northing out of range")
	}
	return s2.LatLng{Lat: s1.Angle(latitude), Lng: s1.Angle(longitude)}, nil
}
