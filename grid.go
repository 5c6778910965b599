package utmups

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

// Grid constants from DMATM 8358.2.
const (
	utmScaleFactor        = 0.9996
	utmFalseEasting       = 500000.0
	utmFalseNorthingSouth = 10000000.0

	upsScaleFactor   = 0.994
	upsFalseNorthing = 2000000.0
	upsFalseEasting  = 2000000.0
)

var (
	// ErrLatitudeOutOfRange is returned when a latitude lies outside
	// [-90,90] degrees.
	ErrLatitudeOutOfRange = errors.New("latitude out of range")
	// ErrInvalidZone is returned when a grid zone is neither a UTM zone
	// number in [1,60] nor a UPS zone marker.
	ErrInvalidZone = errors.New("invalid grid zone")
	// ErrInvalidHemisphere is returned when a conversion requires a
	// concrete hemisphere and none was supplied.
	ErrInvalidHemisphere = errors.New("invalid hemisphere")
)

// GridZone identifies a UTM zone (1 through 60) or one of the two UPS
// polar zones.
type GridZone int

// The UPS zone markers follow the 60 UTM zone numbers.
const (
	UPSNorth GridZone = 61
	UPSSouth GridZone = 62
)

// IsUTM reports whether z is a numbered UTM zone.
func (z GridZone) IsUTM() bool { return z >= 1 && z <= 60 }

// IsUPS reports whether z is one of the UPS polar zones.
func (z GridZone) IsUPS() bool { return z == UPSNorth || z == UPSSouth }

func (z GridZone) String() string {
	switch {
	case z.IsUTM():
		return fmt.Sprintf("%d", int(z))
	case z == UPSNorth:
		return "UPS-N"
	case z == UPSSouth:
		return "UPS-S"
	}
	return fmt.Sprintf("GridZone(%d)", int(z))
}

// centralMeridian returns the central meridian of a UTM zone in radians.
func (z GridZone) centralMeridian() float64 {
	return (float64(z-1)*6 - 180 + 3) * math.Pi / 180
}

// ZoneRequest selects the grid zone for a forward conversion: either a
// fixed zone or automatic selection from the coordinates. The zero value is
// not valid; use AutoZone or FixedZone.
type ZoneRequest struct {
	zone GridZone
	auto bool
}

// AutoZone selects the zone from the latitude and longitude, including the
// UPS polar caps and the Norway and Svalbard exceptions.
var AutoZone = ZoneRequest{auto: true}

// FixedZone requests a specific grid zone, bypassing automatic selection
// and its exceptions.
func FixedZone(zone GridZone) ZoneRequest { return ZoneRequest{zone: zone} }

// HemisphereRequest selects the hemisphere for a forward conversion: either
// a fixed hemisphere or automatic selection from the latitude sign.
type HemisphereRequest struct {
	hemisphere Hemisphere
	auto       bool
}

// AutoHemisphere selects the northern hemisphere for latitudes >= 0 and the
// southern hemisphere otherwise.
var AutoHemisphere = HemisphereRequest{auto: true}

// FixedHemisphere requests a specific hemisphere. Fixing the southern
// hemisphere for a northern latitude is valid and yields the large false
// northing used when data spans the equator.
func FixedHemisphere(hemisphere Hemisphere) HemisphereRequest {
	return HemisphereRequest{hemisphere: hemisphere}
}

// GridCoord is a position on the UTM/UPS grid.
type GridCoord struct {
	Zone       GridZone
	Hemisphere Hemisphere
	Easting    float64
	Northing   float64
}

func (g GridCoord) String() string {
	return fmt.Sprintf("%s %s %.3f %.3f", g.Zone, g.Hemisphere, g.Easting, g.Northing)
}

// TMFormulation selects the transverse Mercator series used for the UTM
// zones of a Grid.
type TMFormulation int

const (
	// FormulationKruger is the default: the fourth-order Krüger series
	// with a closed-form inverse and convergence/scale support.
	FormulationKruger TMFormulation = iota
	// FormulationDMA is the series of DMATM 8358.2 with the iterative
	// inverse. It reproduces historical outputs but does not report
	// convergence and scale.
	FormulationDMA
)

// Grid converts between geodetic coordinates and the UTM/UPS grid for one
// ellipsoid. A zero squared eccentricity selects the exact spherical
// transforms instead of the ellipsoidal series. All 62 underlying
// converters are built once up front; a Grid is safe for concurrent use.
type Grid struct {
	semiMajorAxis float64
	ecc2          float64
	formulation   TMFormulation

	tm      [61]Projection // indexed by zone number, [0] unused
	psNorth Projection
	psSouth Projection
}

// NewGrid constructs a Grid for the given ellipsoid using the Krüger
// transverse Mercator series.
func NewGrid(semiMajorAxis, ecc2 float64) (*Grid, error) {
	return NewGridFormulation(semiMajorAxis, ecc2, FormulationKruger)
}

// NewGridFormulation constructs a Grid with an explicit transverse Mercator
// formulation. A spherical earth (ecc2 == 0) always uses the exact sphere
// transforms regardless of the formulation.
func NewGridFormulation(semiMajorAxis, ecc2 float64, formulation TMFormulation) (*Grid, error) {
	if formulation != FormulationKruger && formulation != FormulationDMA {
		return nil, errors.New("unknown transverse Mercator formulation")
	}
	g := &Grid{
		semiMajorAxis: semiMajorAxis,
		ecc2:          ecc2,
		formulation:   formulation,
	}

	// UTM converters are built with a zero false northing; the southern
	// false northing is applied around the converter calls so one
	// converter per zone serves both hemispheres.
	for zone := GridZone(1); zone <= 60; zone++ {
		var p Projection
		var err error
		switch {
		case ecc2 == 0:
			p, err = NewSphericalTransverseMercator(semiMajorAxis,
				utmScaleFactor, zone.centralMeridian(), 0, utmFalseEasting)
		case formulation == FormulationDMA:
			p, err = NewDMATransverseMercator(semiMajorAxis, ecc2,
				utmScaleFactor, zone.centralMeridian(), 0, utmFalseEasting)
		default:
			p, err = NewTransverseMercator(semiMajorAxis, ecc2,
				utmScaleFactor, zone.centralMeridian(), 0, utmFalseEasting)
		}
		if err != nil {
			return nil, err
		}
		g.tm[zone] = p
	}

	for _, hemisphere := range []Hemisphere{HemisphereNorth, HemisphereSouth} {
		var p Projection
		var err error
		if ecc2 == 0 {
			p, err = NewSphericalPolarStereographic(semiMajorAxis,
				upsScaleFactor, hemisphere, upsFalseNorthing, upsFalseEasting)
		} else {
			p, err = NewPolarStereographic(semiMajorAxis, ecc2,
				upsScaleFactor, hemisphere, upsFalseNorthing, upsFalseEasting)
		}
		if err != nil {
			return nil, err
		}
		if hemisphere == HemisphereNorth {
			g.psNorth = p
		} else {
			g.psSouth = p
		}
	}
	return g, nil
}

// resolveZone applies the zone selection rules: UPS caps for automatic
// requests at high latitudes, the numbered UTM zone from the longitude with
// the Norway and Svalbard exceptions, or the fixed zone as requested.
// Fixed zones bypass the exceptions entirely.
func resolveZone(latitude, longitude float64, request ZoneRequest) (GridZone, error) {
	if !request.auto {
		if !request.zone.IsUTM() && !request.zone.IsUPS() {
			return 0, ErrInvalidZone
		}
		return request.zone, nil
	}

	const deg = math.Pi / 180
	if latitude >= 84*deg {
		return UPSNorth, nil
	}
	if latitude < -80*deg {
		return UPSSouth, nil
	}

	// A longitude on an exact zone boundary belongs to the zone east of
	// it; the radian quotient can land just below the integer there.
	quot := (longitude + 180*deg) / (6 * deg)
	if nearest := math.Round(quot); math.Abs(quot-nearest) < 1e-9 {
		quot = nearest
	}
	zone := GridZone(quot) + 1
	if zone > 60 {
		zone = 1
	}

	// Zone 32 is widened over southern Norway.
	if latitude >= 56*deg && latitude < 64*deg &&
		longitude >= 3*deg && longitude < 12*deg {
		return 32, nil
	}
	// Zones 31,33,35,37 are widened around Svalbard.
	if latitude >= 72*deg && latitude < 84*deg && longitude >= 0 {
		switch {
		case longitude < 9*deg:
			return 31, nil
		case longitude < 21*deg:
			return 33, nil
		case longitude < 33*deg:
			return 35, nil
		case longitude < 42*deg:
			return 37, nil
		}
	}
	return zone, nil
}

func resolveHemisphere(latitude float64, zone GridZone, request HemisphereRequest) (Hemisphere, error) {
	// The UPS zone dictates the hemisphere regardless of the request.
	switch zone {
	case UPSNorth:
		return HemisphereNorth, nil
	case UPSSouth:
		return HemisphereSouth, nil
	}
	if request.auto {
		if latitude >= 0 {
			return HemisphereNorth, nil
		}
		return HemisphereSouth, nil
	}
	if request.hemisphere != HemisphereNorth && request.hemisphere != HemisphereSouth {
		return HemisphereInvalid, ErrInvalidHemisphere
	}
	return request.hemisphere, nil
}

func (g *Grid) projectionFor(zone GridZone) Projection {
	switch zone {
	case UPSNorth:
		return g.psNorth
	case UPSSouth:
		return g.psSouth
	}
	return g.tm[zone]
}

// ConvertFromGeodetic converts geodetic coordinates to a grid position,
// resolving the zone and hemisphere as requested.
func (g *Grid) ConvertFromGeodetic(geodeticCoordinates s2.LatLng, zone ZoneRequest,
	hemisphere HemisphereRequest) (GridCoord, error) {
	latitude := geodeticCoordinates.Lat.Radians()
	if latitude < -math.Pi/2 || latitude > math.Pi/2 {
		return GridCoord{}, ErrLatitudeOutOfRange
	}
	longitude := normalizeLongitude(geodeticCoordinates.Lng.Radians())

	z, err := resolveZone(latitude, longitude, zone)
	if err != nil {
		return GridCoord{}, err
	}
	h, err := resolveHemisphere(latitude, z, hemisphere)
	if err != nil {
		return GridCoord{}, err
	}

	coords, err := g.projectionFor(z).ConvertFromGeodetic(geodeticCoordinates)
	if err != nil {
		return GridCoord{}, err
	}
	if z.IsUTM() && h == HemisphereSouth {
		coords.Northing += utmFalseNorthingSouth
	}
	return GridCoord{Zone: z, Hemisphere: h, Easting: coords.Easting, Northing: coords.Northing}, nil
}

// ConvertFromGeodeticWithScale converts geodetic coordinates to a grid
// position and also reports the grid convergence and point scale factor.
// It fails for formulations that do not support them (the DMA series and
// the spherical transforms).
func (g *Grid) ConvertFromGeodeticWithScale(geodeticCoordinates s2.LatLng, zone ZoneRequest,
	hemisphere HemisphereRequest) (GridCoord, ConvergenceAndScale, error) {
	latitude := geodeticCoordinates.Lat.Radians()
	if latitude < -math.Pi/2 || latitude > math.Pi/2 {
		return GridCoord{}, ConvergenceAndScale{}, ErrLatitudeOutOfRange
	}
	longitude := normalizeLongitude(geodeticCoordinates.Lng.Radians())

	z, err := resolveZone(latitude, longitude, zone)
	if err != nil {
		return GridCoord{}, ConvergenceAndScale{}, err
	}
	h, err := resolveHemisphere(latitude, z, hemisphere)
	if err != nil {
		return GridCoord{}, ConvergenceAndScale{}, err
	}

	scaled, ok := g.projectionFor(z).(ScaledProjection)
	if !ok {
		return GridCoord{}, ConvergenceAndScale{}, errors.New("convergence and scale not supported by this formulation")
	}
	coords, cs, err := scaled.ConvertFromGeodeticWithScale(geodeticCoordinates)
	if err != nil {
		return GridCoord{}, ConvergenceAndScale{}, err
	}
	if z.IsUTM() && h == HemisphereSouth {
		coords.Northing += utmFalseNorthingSouth
	}
	return GridCoord{Zone: z, Hemisphere: h, Easting: coords.Easting, Northing: coords.Northing}, cs, nil
}

// ConvertToGeodetic converts a grid position back to geodetic coordinates.
// The zone and hemisphere must be concrete: the zone as produced by the
// forward conversion, and for UTM zones the hemisphere that selected the
// false northing. For UPS zones the hemisphere follows from the zone and
// the field is not consulted.
func (g *Grid) ConvertToGeodetic(coordinates GridCoord) (s2.LatLng, error) {
	if coordinates.Zone.IsUPS() {
		return g.projectionFor(coordinates.Zone).ConvertToGeodetic(MapCoords{
			Easting:  coordinates.Easting,
			Northing: coordinates.Northing,
		})
	}
	if !coordinates.Zone.IsUTM() {
		return s2.LatLng{}, ErrInvalidZone
	}

	northing := coordinates.Northing
	switch coordinates.Hemisphere {
	case HemisphereNorth:
	case HemisphereSouth:
		northing -= utmFalseNorthingSouth
	default:
		return s2.LatLng{}, ErrInvalidHemisphere
	}
	return g.projectionFor(coordinates.Zone).ConvertToGeodetic(MapCoords{
		Easting:  coordinates.Easting,
		Northing: northing,
	})
}
