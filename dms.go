package utmups

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/golang/geo/s1"
)

// ParseDMS parses a degrees-minutes-seconds angle string of the form
// "+073:00:00.000" or "-113d54m43.321s", with an optional leading sign and
// optional fractional seconds. Colon and letter separators may not be
// mixed within one string except for the trailing 's', which is optional.
func ParseDMS(s string) (s1.Angle, error) {
	var degs, mins, secs, fracs uint64
	frac10s := uint64(1)
	i := 0

	negative := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		negative = s[i] == '-'
		i++
	}

	parseErr := fmt.Errorf("malformed DMS angle %q", s)
	if i >= len(s) {
		return 0, parseErr
	}

	for ; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			degs = degs*10 + uint64(s[i]-'0')
		} else if s[i] == ':' || s[i] == 'd' {
			i++
			break
		} else {
			return 0, parseErr
		}
	}
	for ; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			mins = mins*10 + uint64(s[i]-'0')
		} else if s[i] == ':' || s[i] == 'm' {
			i++
			break
		} else {
			return 0, parseErr
		}
	}
	for ; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			secs = secs*10 + uint64(s[i]-'0')
		} else if s[i] == '.' {
			i++
			break
		} else if s[i] == 's' {
			break
		} else {
			return 0, parseErr
		}
	}
	for ; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			fracs = fracs*10 + uint64(s[i]-'0')
			frac10s *= 10
		} else if s[i] == 's' {
			i++
			break
		} else {
			return 0, parseErr
		}
	}
	if i < len(s) {
		return 0, parseErr
	}
	if mins >= 60 || secs >= 60 {
		return 0, errors.New("minutes and seconds must be below 60")
	}

	deg := float64(degs) + float64(mins)/60 + float64(secs)/3600 +
		float64(fracs)/float64(frac10s)/3600
	if negative {
		deg = -deg
	}
	return s1.Angle(deg) * s1.Degree, nil
}

// FormatDMS formats an angle as signed degrees-minutes-seconds with the
// given number of fractional second digits (at most 9). The whole angle is
// rounded at that precision so carries propagate up through seconds,
// minutes and degrees. dmsSep selects "+073d00m00.000s" separators over the
// default "+073:00:00.000".
func FormatDMS(angle s1.Angle, secDigits int, dmsSep bool) string {
	if secDigits < 0 {
		secDigits = 0
	}
	if secDigits > 9 {
		secDigits = 9
	}

	deg := math.Mod(math.Mod(angle.Degrees(), 360)+360, 360)
	if deg >= 180 {
		deg -= 360
	}

	multiplier := uint64(1)
	for k := 0; k < secDigits; k++ {
		multiplier *= 10
	}

	iangle := uint64(math.Floor(math.Abs(deg)*3600*float64(multiplier) + 0.5))

	sign := "+"
	if deg < 0 {
		sign = "-"
	}
	degs := iangle / (3600 * multiplier)
	mins := (iangle / (60 * multiplier)) % 60
	secs := (iangle / multiplier) % 60
	fsec := iangle % multiplier

	var b strings.Builder
	sepD, sepM := ":", ":"
	if dmsSep {
		sepD, sepM = "d", "m"
	}
	fmt.Fprintf(&b, "%s%03d%s%02d%s%02d", sign, degs, sepD, mins, sepM, secs)
	if secDigits > 0 {
		fmt.Fprintf(&b, ".%0*d", secDigits, fsec)
	}
	if dmsSep {
		b.WriteByte('s')
	}
	return b.String()
}
