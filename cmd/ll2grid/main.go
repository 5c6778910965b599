// Command ll2grid converts geodetic coordinates to UTM/UPS grid
// coordinates.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/golang/geo/s2"
	"github.com/spf13/pflag"

	"github.com/mapgrid/utmups"
)

func main() {
	var ellipsoidCode = pflag.StringP("ellipsoid", "e", "WE", "Reference ellipsoid code (e.g. WE, IN, CC).")
	var datumCode = pflag.StringP("datum", "d", "", "Datum code (e.g. NAS-C); selects the datum's ellipsoid.")
	var zoneFlag = pflag.IntP("zone", "z", 0, "Force a UTM zone number instead of automatic selection.")
	var hemiFlag = pflag.StringP("hemisphere", "H", "", "Force hemisphere N or S instead of automatic selection.")
	var withScale = pflag.BoolP("scale", "s", false, "Also print grid convergence and point scale factor.")
	var useDMA = pflag.Bool("dma", false, "Use the DMATM 8358.2 series instead of the Krüger series.")
	pflag.Usage = usage
	pflag.Parse()

	if pflag.NArg() != 2 {
		usage()
		os.Exit(1)
	}

	lat, err := parseAngle(pflag.Arg(0))
	if err != nil {
		log.Fatal("bad latitude", "value", pflag.Arg(0), "err", err)
	}
	lng, err := parseAngle(pflag.Arg(1))
	if err != nil {
		log.Fatal("bad longitude", "value", pflag.Arg(1), "err", err)
	}

	ellipsoid, err := resolveEllipsoid(*ellipsoidCode, *datumCode)
	if err != nil {
		log.Fatal(err)
	}

	formulation := utmups.FormulationKruger
	if *useDMA {
		formulation = utmups.FormulationDMA
	}
	grid, err := utmups.NewGridFormulation(ellipsoid.SemiMajorAxis, ellipsoid.Ecc2, formulation)
	if err != nil {
		log.Fatal(err)
	}

	zone := utmups.AutoZone
	if *zoneFlag != 0 {
		zone = utmups.FixedZone(utmups.GridZone(*zoneFlag))
	}
	hemisphere := utmups.AutoHemisphere
	switch *hemiFlag {
	case "":
	case "N", "n":
		hemisphere = utmups.FixedHemisphere(utmups.HemisphereNorth)
	case "S", "s":
		hemisphere = utmups.FixedHemisphere(utmups.HemisphereSouth)
	default:
		log.Fatal("hemisphere must be N or S", "value", *hemiFlag)
	}

	geo := s2.LatLngFromDegrees(lat, lng)
	if *withScale {
		gc, cs, err := grid.ConvertFromGeodeticWithScale(geo, zone, hemisphere)
		if err != nil {
			log.Fatal("conversion failed", "err", err)
		}
		fmt.Printf("zone = %s, hemisphere = %s, easting = %.3f, northing = %.3f\n",
			gc.Zone, gc.Hemisphere, gc.Easting, gc.Northing)
		fmt.Printf("convergence = %s, scale = %.9f\n",
			utmups.FormatDMS(cs.Convergence, 3, false), cs.Scale)
		return
	}
	gc, err := grid.ConvertFromGeodetic(geo, zone, hemisphere)
	if err != nil {
		log.Fatal("conversion failed", "err", err)
	}
	fmt.Printf("zone = %s, hemisphere = %s, easting = %.3f, northing = %.3f\n",
		gc.Zone, gc.Hemisphere, gc.Easting, gc.Northing)
}

// parseAngle accepts decimal degrees or DMS ("+073:00:00.000",
// "-113d54m43.321s").
func parseAngle(s string) (float64, error) {
	if deg, err := strconv.ParseFloat(s, 64); err == nil {
		return deg, nil
	}
	a, err := utmups.ParseDMS(s)
	if err != nil {
		return 0, err
	}
	return a.Degrees(), nil
}

func resolveEllipsoid(ellipsoidCode, datumCode string) (utmups.Ellipsoid, error) {
	if datumCode != "" {
		d, ok := utmups.DatumByCode(datumCode)
		if !ok {
			return utmups.Ellipsoid{}, fmt.Errorf("unknown datum code %q", datumCode)
		}
		return d.Ellipsoid(), nil
	}
	e, ok := utmups.EllipsoidByCode(ellipsoidCode)
	if !ok {
		return utmups.Ellipsoid{}, fmt.Errorf("unknown ellipsoid code %q", ellipsoidCode)
	}
	return e, nil
}

func usage() {
	fmt.Printf("Latitude / Longitude to UTM/UPS grid conversion\n")
	fmt.Printf("\n")
	fmt.Printf("Usage:\n")
	fmt.Printf("\tll2grid [options] latitude longitude\n")
	fmt.Printf("\n")
	fmt.Printf("where,\n")
	fmt.Printf("\tLatitude and longitude are in decimal degrees or DMS\n")
	fmt.Printf("\t   (e.g. +72d04m32.110s). Use negative for south or west.\n")
	fmt.Printf("\n")
	fmt.Printf("Example:\n")
	fmt.Printf("\tll2grid 42.662139 -71.365553\n")
	fmt.Printf("\tll2grid -s -e IN +30d00m00s +102d00m00s\n")
	fmt.Printf("\n")
	pflag.PrintDefaults()
}
