package utmups

// Ellipsoid is a reference ellipsoid, identified by its two-letter DMA
// code. Ecc2 is the squared first eccentricity.
type Ellipsoid struct {
	Name          string
	Code          string
	SemiMajorAxis float64
	Ecc2          float64
}

// ecc2FromInvFlattening derives the squared first eccentricity e2 = f(2-f)
// from the inverse flattening, the form ellipsoids are published in.
func ecc2FromInvFlattening(invFlattening float64) float64 {
	f := 1 / invFlattening
	return f * (2 - f)
}

// WGS84 is the World Geodetic System 1984 ellipsoid.
var WGS84 = Ellipsoid{
	Name:          "WGS 1984",
	Code:          "WE",
	SemiMajorAxis: 6378137,
	Ecc2:          ecc2FromInvFlattening(298.257223563),
}

// referenceEllipsoids lists the reference ellipsoids from DMATM 8358.2
// appendix A.
var referenceEllipsoids = []Ellipsoid{
	{"Airy 1830", "AA", 6377563.396, ecc2FromInvFlattening(299.3249646)},
	{"Australian National", "AN", 6378160, ecc2FromInvFlattening(298.25)},
	{"Bessel 1841, Ethiopia, Indonesia, Japan and Korea", "BR", 6377397.155, ecc2FromInvFlattening(299.1528128)},
	{"Bessel 1841, Namibia", "BN", 6377483.865, ecc2FromInvFlattening(299.1528128)},
	{"Clarke 1866", "CC", 6378206.4, ecc2FromInvFlattening(294.9786982)},
	{"Clarke 1880", "CD", 6378249.145, ecc2FromInvFlattening(293.465)},
	{"Everest, Brunei and E. Malaysia (Sabah and Sarawak)", "EB", 6377298.556, ecc2FromInvFlattening(300.8017)},
	{"Everest, India 1830", "EA", 6377276.345, ecc2FromInvFlattening(300.8017)},
	{"Everest, India 1956", "EC", 6377301.243, ecc2FromInvFlattening(300.8017)},
	{"Everest, Pakistan", "EF", 6377309.613, ecc2FromInvFlattening(300.8017)},
	{"Everest, W. Malaysia and Singapore 1948", "EE", 6377304.063, ecc2FromInvFlattening(300.8017)},
	{"Everest, W. Malaysia 1969", "ED", 6377295.664, ecc2FromInvFlattening(300.8017)},
	{"Geodetic Reference System 1980", "RF", 6378137, ecc2FromInvFlattening(298.257222101)},
	{"Helmert 1906", "HE", 6378200, ecc2FromInvFlattening(298.3)},
	{"Hough 1960", "HO", 6378270, ecc2FromInvFlattening(297)},
	{"Indonesian 1974", "ID", 6378160, ecc2FromInvFlattening(298.247)},
	{"International 1924", "IN", 6378388, ecc2FromInvFlattening(297)},
	{"Krassovsky 1940", "KA", 6378245, ecc2FromInvFlattening(298.3)},
	{"Modified Airy", "AM", 6377340.189, ecc2FromInvFlattening(299.3249646)},
	{"Modified Fischer 1960", "FA", 6378155, ecc2FromInvFlattening(298.3)},
	{"South American 1969", "SA", 6378160, ecc2FromInvFlattening(298.25)},
	{"WGS 1972", "WD", 6378135, ecc2FromInvFlattening(298.26)},
	WGS84,
}

var ellipsoidsByCode = map[string]Ellipsoid{}

func init() {
	for _, e := range referenceEllipsoids {
		ellipsoidsByCode[e.Code] = e
	}
}

// EllipsoidByCode looks up a reference ellipsoid by its two-letter DMA
// code, e.g. "IN" for International 1924.
func EllipsoidByCode(code string) (Ellipsoid, bool) {
	e, ok := ellipsoidsByCode[code]
	return e, ok
}

// Ellipsoids returns a copy of the reference ellipsoid table.
func Ellipsoids() []Ellipsoid {
	out := make([]Ellipsoid, len(referenceEllipsoids))
	copy(out, referenceEllipsoids)
	return out
}
