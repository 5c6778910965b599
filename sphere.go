package utmups

import (
	"errors"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// SphericalTransverseMercator converts between geodetic and transverse
// Mercator projection coordinates on a sphere using the exact closed-form
// equations from Snyder, Map Projections: A Working Manual. The resolvers
// dispatch here instead of the ellipsoidal series whenever the squared
// eccentricity is zero.
type SphericalTransverseMercator struct {
	originLong    float64
	falseNorthing float64
	falseEasting  float64
	scaledRadius  float64 // R * k0
}

// NewSphericalTransverseMercator constructs a spherical transverse Mercator
// converter with the given sphere radius and scale factor on the central
// meridian.
func NewSphericalTransverseMercator(radius, scaleFactor, centralMeridian,
	falseNorthing, falseEasting float64) (*SphericalTransverseMercator, error) {
	if radius <= 0.0 {
		return nil, errors.New("radius must be greater than zero")
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
	return &SphericalTransverseMercator{
		originLong:    centralMeridian,
		falseNorthing: falseNorthing,
		falseEasting:  falseEasting,
		scaledRadius:  radius * scaleFactor,
	}, nil
}

// ConvertFromGeodetic converts geodetic coordinates to spherical transverse
// Mercator easting and northing. Points 90 degrees from the central
// meridian on the equator project to infinity and are rejected.
func (t *SphericalTransverseMercator) ConvertFromGeodetic(geodeticCoordinates s2.LatLng) (MapCoords, error) {
	latitude := geodeticCoordinates.Lat.Radians()
	if latitude < -math.Pi/2 || latitude > math.Pi/2 {
		return MapCoords{}, errors.New("latitude out of range")
	}
	lambda := normalizeLongitude(geodeticCoordinates.Lng.Radians() - t.originLong)

	b := math.Cos(latitude) * math.Sin(lambda)
	if b <= -1 || b >= 1 {
		return MapCoords{}, errors.New("point projects to infinity")
	}
	return MapCoords{
		Easting:  t.falseEasting + t.scaledRadius*math.Atanh(b),
		Northing: t.falseNorthing + t.scaledRadius*math.Atan(math.Tan(latitude)/math.Cos(lambda)),
	}, nil
}

// ConvertToGeodetic converts spherical transverse Mercator easting and
// northing back to geodetic coordinates.
func (t *SphericalTransverseMercator) ConvertToGeodetic(coordinates MapCoords) (s2.LatLng, error) {
	d := (coordinates.Northing - t.falseNorthing) / t.scaledRadius
	xr := (coordinates.Easting - t.falseEasting) / t.scaledRadius
	longitude := normalizeLongitude(t.originLong + math.Atan(math.Sinh(xr)/math.Cos(d)))
	latitude := math.Asin(math.Sin(d) / math.Cosh(xr))
	return s2.LatLng{Lat: s1.Angle(latitude), Lng: s1.Angle(longitude)}, nil
}

// SphericalPolarStereographic converts between geodetic and polar
// stereographic projection coordinates on a sphere, per Snyder.
type SphericalPolarStereographic struct {
	hemisphere    Hemisphere
	falseNorthing float64
	falseEasting  float64
	diameter      float64 // 2 * R * k0
}

// NewSphericalPolarStereographic constructs a spherical polar stereographic
// converter with the pole of the given hemisphere as projection origin.
func NewSphericalPolarStereographic(radius, scaleFactor float64, hemisphere Hemisphere,
	falseNorthing, falseEasting float64) (*SphericalPolarStereographic, error) {
	if radius <= 0.0 {
		return nil, errors.New("radius must be greater than zero")
	}
	const minScaleFactor = 0.1
	const maxScaleFactor = 10.0
	if (scaleFactor < minScaleFactor) || (scaleFactor > maxScaleFactor) {
		return nil, errors.New("scale factor out of range")
	}
	if hemisphere != HemisphereNorth && hemisphere != HemisphereSouth {
		return nil, errors.New("invalid hemisphere")
	}
	return &SphericalPolarStereographic{
		hemisphere:    hemisphere,
		falseNorthing: falseNorthing,
		falseEasting:  falseEasting,
		diameter:      2 * radius * scaleFactor,
	}, nil
}

// ConvertFromGeodetic converts geodetic coordinates to spherical polar
// stereographic easting and northing. The pole itself projects to the false
// origin since tan(z/2) vanishes there.
func (p *SphericalPolarStereographic) ConvertFromGeodetic(geodeticCoordinates s2.LatLng) (MapCoords, error) {
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

	var r, northing float64
	if p.hemisphere == HemisphereNorth {
		r = p.diameter * math.Tan(math.Pi/4-latitude/2)
		northing = p.falseNorthing - r*math.Cos(longitude)
	} else {
		r = p.diameter * math.Tan(math.Pi/4+latitude/2)
		northing = p.falseNorthing + r*math.Cos(longitude)
	}
	return MapCoords{
		Easting:  p.falseEasting + r*math.Sin(longitude),
		Northing: northing,
	}, nil
}

// ConvertToGeodetic converts spherical polar stereographic easting and
// northing back to geodetic coordinates. The projection origin maps to the
// pole with longitude zero.
func (p *SphericalPolarStereographic) ConvertToGeodetic(coordinates MapCoords) (s2.LatLng, error) {
	x := coordinates.Easting - p.falseEasting
	y := coordinates.Northing - p.falseNorthing

	if x == 0 && y == 0 {
		latitude := math.Pi / 2
		if p.hemisphere == HemisphereSouth {
			latitude = -latitude
		}
		return s2.LatLng{Lat: s1.Angle(latitude), Lng: 0}, nil
	}

	rho := math.Hypot(x, y)
	c := 2 * math.Atan(rho/p.diameter)

	var latitude, longitude float64
	if p.hemisphere == HemisphereNorth {
		latitude = math.Asin(math.Cos(c))
		longitude = math.Atan2(x, -y)
	} else {
		latitude = -math.Asin(math.Cos(c))
		longitude = math.Atan2(x, y)
	}
	return s2.LatLng{Lat: s1.Angle(latitude), Lng: s1.Angle(longitude)}, nil
}
