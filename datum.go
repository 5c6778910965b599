package utmups

// Datum is a local geodetic datum: a reference ellipsoid plus the
// three-parameter shift of its origin from the WGS84 geocenter, per DMATM
// 8350.2 appendices B and C. The shifts are carried as data for callers
// that do their own datum transformation; grid conversion itself only
// consumes the ellipsoid.
type Datum struct {
	Name          string
	Code          string
	EllipsoidCode string
	ShiftX        float64 // meters, to WGS84
	ShiftY        float64
	ShiftZ        float64
}

// Ellipsoid returns the datum's reference ellipsoid.
func (d Datum) Ellipsoid() Ellipsoid {
	e, _ := EllipsoidByCode(d.EllipsoidCode)
	return e
}

// standardDatums lists the mean solutions and the most widely used regional
// datums from DMATM 8350.2.
var standardDatums = []Datum{
	// Africa
	{"ADINDAN, Mean Solution (Ethiopia and Sudan)", "ADI-M", "CD", -166, -15, 204},
	{"AFGOOYE, Somalia", "AFG", "KA", -43, -163, 45},
	{"ARC 1950, Mean Solution", "ARF-M", "CD", -143, -90, -294},
	{"ARC 1960, Mean Solution (Kenya and Tanzania)", "ARS-M", "CD", -160, -6, -302},
	{"CAPE, South Africa", "CAP", "CD", -136, -108, 292},
	{"CARTHAGE, Tunisia", "CGE", "CD", -263, 6, 431},
	{"MERCHICH, Morocco", "MER", "CD", 31, 146, 47},
	{"MINNA, Nigeria", "MIN-B", "CD", -92, -93, 122},
	{"OLD EGYPTIAN 1907, Egypt", "OEG", "HE", -130, 110, -13},
	{"POINT 58, Mean Solution (Burkina Faso and Niger)", "PTB", "CD", -106, -129, 165},
	{"SCHWARZECK, Namibia", "SCK", "BN", 616, 97, -251},

	// Asia
	{"AIN EL ABD 1970, Saudi Arabia", "AIN-B", "IN", -143, -236, 7},
	{"DJAKARTA (BATAVIA), Sumatra (Indonesia)", "BAT", "BR", -377, 681, -50},
	{"HONG KONG 1963, Hong Kong", "HKD", "IN", -156, -271, -189},
	{"HU-TZU-SHAN, Taiwan", "HTN", "IN", -637, -549, -203},
	{"INDIAN, India and Nepal", "IND-I", "EC", 295, 736, 257},
	{"INDIAN, Pakistan", "IND-P", "EF", 283, 682, 231},
	{"INDIAN 1975, Thailand", "INH-A", "EA", 209, 818, 290},
	{"INDONESIAN 1974, Indonesia", "IDN", "ID", -24, -15, 5},
	{"KERTAU 1948, West Malaysia and Singapore", "KEA", "EE", -11, 851, 5},
	{"KOREAN GEODETIC SYSTEM 1995, South Korea", "KGS", "WE", 0, 0, 0},
	{"NAHRWAN, Saudi Arabia", "NAH-C", "CD", -243, -192, 477},
	{"QATAR NATIONAL, Qatar", "QAT", "IN", -128, -283, 22},
	{"TIMBALAI 1948, Brunei and East Malaysia", "TIL", "EB", -679, 669, -48},
	{"TOKYO, Mean Solution (Japan, Okinawa and South Korea)", "TOY-M", "BR", -148, 507, 685},

	// Australia
	{"AUSTRALIAN GEODETIC 1966, Australia and Tasmania", "AUA", "AN", -133, -48, 148},
	{"AUSTRALIAN GEODETIC 1984, Australia and Tasmania", "AUG", "AN", -134, -48, 149},

	// Europe
	{"EUROPEAN 1950, Mean Solution", "EUR-M", "IN", -87, -98, -121},
	{"EUROPEAN 1950, Western Europe", "EUR-A", "IN", -87, -96, -120},
	{"EUROPEAN 1950, Norway and Finland", "EUR-C", "IN", -87, -95, -120},
	{"EUROPEAN 1950, Portugal and Spain", "EUR-D", "IN", -84, -107, -120},
	{"EUROPEAN 1950, Cyprus", "EUR-E", "IN", -104, -101, -140},
	{"EUROPEAN 1950, Iran", "EUR-H", "IN", -117, -132, -164},
	{"HJORSEY 1955, Iceland", "HJO", "IN", -73, 46, -86},
	{"IRELAND 1965", "IRL", "AM", 506, -122, 611},
	{"ORDNANCE SURVEY OF GREAT BRITAIN 1936, Mean Solution", "OGB-M", "AA", 375, -111, 431},
	{"PULKOVO 1942, Russia", "PUK", "KA", 28, -130, -95},
	{"ROME 1940, Sardinia", "MOD", "IN", -225, -65, 9},
	{"S-42 (PULKOVO 1942), Poland", "SPK-B", "KA", 23, -124, -82},
	{"S-JTSK Czechoslovakia", "CCD", "BR", 589, 76, 480},

	// North America
	{"CAPE CANAVERAL, Mean Solution (Florida and Bahamas)", "CAC", "CC", -2, 151, 181},
	{"NORTH AMERICAN 1927, Mean Solution (CONUS)", "NAS-C", "CC", -8, 160, 176},
	{"NORTH AMERICAN 1927, Alaska", "NAS-D", "CC", -5, 135, 172},
	{"NORTH AMERICAN 1927, Canada Mean Solution", "NAS-E", "CC", -10, 158, 187},
	{"NORTH AMERICAN 1927, Mexico", "NAS-L", "CC", -12, 130, 190},
	{"NORTH AMERICAN 1983, Alaska", "NAR-A", "RF", 0, 0, 0},
	{"NORTH AMERICAN 1983, Canada", "NAR-B", "RF", 0, 0, 0},
	{"NORTH AMERICAN 1983, CONUS", "NAR-C", "RF", 0, 0, 0},

	// South America
	{"BOGOTA OBSERVATORY, Colombia", "BOO", "IN", 307, 304, -318},
	{"CAMPO INCHAUSPE 1969, Argentina", "CAI", "IN", -148, 136, 90},
	{"CORREGO ALEGRE, Brazil", "COA", "IN", -206, 172, -6},
	{"PROVISIONAL SOUTH AMERICAN 1956, Mean Solution", "PRP-M", "IN", -288, 175, -376},
	{"SOUTH AMERICAN 1969, Mean Solution", "SAN-M", "SA", -57, 1, -41},
	{"SOUTH AMERICAN GEOCENTRIC REFERENCE SYSTEM (SIRGAS)", "SIR", "RF", 0, 0, 0},

	// Oceans and islands
	{"ASCENSION ISLAND 1958, Ascension Island", "ASC", "IN", -205, 107, 53},
	{"BERMUDA 1957, Bermuda Islands", "BER", "CC", -73, 213, 296},
	{"GEODETIC DATUM 1949, New Zealand", "GEO", "IN", 84, -22, 209},
	{"GUAM 1963, Guam", "GUA", "CC", -100, -248, 259},
	{"OLD HAWAIIAN, Mean Solution", "OHA-M", "CC", 61, -285, -181},
	{"SAPPER HILL, East Falkland Island", "SAP", "IN", -355, 21, 72},

	// World
	{"WGS 1972", "WGD", "WD", 0, 0, 0},
	{"WGS 1984", "WGE", "WE", 0, 0, 0},
}

var datumsByCode = map[string]Datum{}

func init() {
	for _, d := range standardDatums {
		datumsByCode[d.Code] = d
	}
}

// DatumByCode looks up a datum by its DMA code, e.g. "NAS-C" for the North
// American 1927 CONUS mean solution.
func DatumByCode(code string) (Datum, bool) {
	d, ok := datumsByCode[code]
	return d, ok
}

// Datums returns a copy of the datum table.
func Datums() []Datum {
	out := make([]Datum, len(standardDatums))
	copy(out, standardDatums)
	return out
}
