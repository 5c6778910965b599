package utmups

import (
	"errors"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// PolarStereographic converts between geodetic and polar stereographic
// projection coordinates for one hemisphere. The projection is centered on
// the pole; longitude zero maps to the negative northing axis in the north
// and the positive northing axis in the south.
type PolarStereographic struct {
	// Ellipsoid Parameters
	semiMajorAxis float64
	ecc2          float64 // squared eccentricity
	ecc           float64

	// Projection Parameters
	hemisphere    Hemisphere
	falseNorthing float64
	falseEasting  float64
	scaleFactor   float64

	// k0 * C0, the polar radius coefficient: R = scaledC0 * tan(z/2)
	scaledC0 float64

	// Series coefficients recovering geodetic latitude from the
	// conformal latitude chi.
	aBar float64
	bBar float64
	cBar float64
	dBar float64
}

// NewPolarStereographic constructs a polar stereographic converter with the
// pole of the given hemisphere as projection origin and the given scale
// factor at the pole.
func NewPolarStereographic(semiMajorAxis, ecc2, scaleFactor float64, hemisphere Hemisphere,
	falseNorthing, falseEasting float64) (*PolarStereographic, error) {
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
	if hemisphere != HemisphereNorth && hemisphere != HemisphereSouth {
		return nil, errors.New("invalid hemisphere")
	}

	e := math.Sqrt(ecc2)
	e4 := ecc2 * ecc2
	e6 := e4 * ecc2
	e8 := e6 * ecc2
	c0 := 2 * semiMajorAxis / math.Sqrt(1-ecc2) * math.Pow((1-e)/(1+e), e/2)
	return &PolarStereographic{
		semiMajorAxis: semiMajorAxis,
		ecc2:          ecc2,
		ecc:           e,
		hemisphere:    hemisphere,
		falseNorthing: falseNorthing,
		falseEasting:  falseEasting,
		scaleFactor:   scaleFactor,
		scaledC0:      scaleFactor * c0,
		aBar:          ecc2/2 + 5*e4/24 + e6/12 + 13*e8/360,
		bBar:          7*e4/48 + 29*e6/240 + 811*e8/11520,
		cBar:          7*e6/120 + 81*e8/1120,
		dBar:          4279 * e8 / 161280,
	}, nil
}

// polarRadius returns the distance from the pole on the projection plane
// for the given latitude, k0*C0*tan(z/2) with z the conformal colatitude.
func (p *PolarStereographic) polarRadius(latitude float64) float64 {
	sinLat := math.Sin(latitude)
	var tanZHalf float64
	if p.hemisphere == HemisphereNorth {
		tanZHalf = math.Pow((1+p.ecc*sinLat)/(1-p.ecc*sinLat), p.ecc/2) *
			math.Tan(math.Pi/4-latitude/2)
	} else {
		tanZHalf = math.Pow((1-p.ecc*sinLat)/(1+p.ecc*sinLat), p.ecc/2) *
			math.Tan(math.Pi/4+latitude/2)
	}
	return p.scaledC0 * tanZHalf
}

// ConvertFromGeodetic converts geodetic coordinates to polar stereographic
// easting and northing.
func (p *PolarStereographic) ConvertFromGeodetic(geodeticCoordinates s2.LatLng) (MapCoords, error) {
	latitude := geodeticCoordinates.Lat.Radians()
	if latitude < -math.Pi/2 || latitude > math.Pi/2 {
		return MapCoords{}, errors.New("latitude out of range")
	}
	if p.hemisphere == HemisphereNorth && latitude < 0 {
		return MapCoords{}, errors.New("latitude in opposite hemisphere")
	}
	if p.hemisphere == HemisphereSouth && latitude > 0 {
		return MapCoords{}, errors.New("latitude in opposite hemisphere")
	}
	longitude := normalizeLongitude(geodeticCoordinates.Lng.Radians())

	r := p.polarRadius(latitude)
	easting := p.falseEasting + r*math.Sin(longitude)
	var northing float64
	if p.hemisphere == HemisphereNorth {
		northing = p.falseNorthing - r*math.Cos(longitude)
	} else {
		northing = p.falseNorthing + r*math.Cos(longitude)
	}
	return MapCoords{Easting: easting, Northing: northing}, nil
}

// ConvertFromGeodeticWithScale converts geodetic coordinates to polar
// stereographic easting and northing and also reports the meridian
// convergence and point scale factor. Convergence equals the longitude in
// the north and its negation in the south; at the pole itself both the
// convergence and the deviation of the scale factor from its nominal value
// vanish by construction.
func (p *PolarStereographic) ConvertFromGeodeticWithScale(geodeticCoordinates s2.LatLng) (MapCoords, ConvergenceAndScale, error) {
	coords, err := p.ConvertFromGeodetic(geodeticCoordinates)
	if err != nil {
		return MapCoords{}, ConvergenceAndScale{}, err
	}

	latitude := geodeticCoordinates.Lat.Radians()
	if math.Abs(latitude) == math.Pi/2 {
		return coords, ConvergenceAndScale{Convergence: 0, Scale: p.scaleFactor}, nil
	}

	longitude := normalizeLongitude(geodeticCoordinates.Lng.Radians())
	convergence := s1.Angle(longitude)
	if p.hemisphere == HemisphereSouth {
		convergence = -convergence
	}

	sinLat := math.Sin(latitude)
	nu := p.semiMajorAxis / math.Sqrt(1-p.ecc2*sinLat*sinLat)
	scale := p.polarRadius(latitude) / (nu * math.Cos(latitude))
	return coords, ConvergenceAndScale{Convergence: convergence, Scale: scale}, nil
}

// ConvertToGeodetic converts polar stereographic easting and northing back
// to geodetic coordinates. The projection origin maps to the pole with
// longitude zero.
func (p *PolarStereographic) ConvertToGeodetic(coordinates MapCoords) (s2.LatLng, error) {
	x := coordinates.Easting - p.falseEasting
	y := coordinates.Northing - p.falseNorthing

	if x == 0 && y == 0 {
		latitude := math.Pi / 2
		if p.hemisphere == HemisphereSouth {
			latitude = -latitude
		}
		return s2.LatLng{Lat: s1.Angle(latitude), Lng: 0}, nil
	}

	var longitude float64
	if p.hemisphere == HemisphereNorth {
		longitude = math.Atan2(x, -y)
	} else {
		longitude = math.Atan2(x, y)
	}

	var r float64
	switch {
	case y == 0:
		r = math.Abs(x)
	case x == 0:
		r = math.Abs(y)
	default:
		r = math.Abs(x / math.Sin(longitude))
	}

	chi := math.Pi/2 - 2*math.Atan(r/p.scaledC0)

	s2chi := math.Sin(2 * chi)
	c2chi := math.Cos(2 * chi)
	s4chi := 2.0 * s2chi * c2chi
	c4chi := c2chi*c2chi - s2chi*s2chi
	s6chi := s4chi*c2chi + s2chi*c4chi
	s8chi := 2.0 * s4chi * c4chi
	phi := chi + p.aBar*s2chi + p.bBar*s4chi + p.cBar*s6chi + p.dBar*s8chi

	latitude := phi
	if p.hemisphere == HemisphereSouth {
		latitude = -phi
	}
	return s2.LatLng{Lat: s1.Angle(latitude), Lng: s1.Angle(longitude)}, nil
}
