// Command grid2ll converts UTM/UPS grid coordinates to geodetic
// coordinates.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/mapgrid/utmups"
)

func main() {
	var ellipsoidCode = pflag.StringP("ellipsoid", "e", "WE", "Reference ellipsoid code (e.g. WE, IN, CC).")
	var datumCode = pflag.StringP("datum", "d", "", "Datum code (e.g. NAS-C); selects the datum's ellipsoid.")
	var useDMA = pflag.Bool("dma", false, "Use the DMATM 8358.2 series instead of the Krüger series.")
	pflag.Usage = usage
	pflag.Parse()

	if pflag.NArg() != 4 {
		usage()
		os.Exit(1)
	}

	zone, err := parseZone(pflag.Arg(0))
	if err != nil {
		log.Fatal("bad zone", "value", pflag.Arg(0), "err", err)
	}
	var hemisphere utmups.Hemisphere
	switch pflag.Arg(1) {
	case "N", "n":
		hemisphere = utmups.HemisphereNorth
	case "S", "s":
		hemisphere = utmups.HemisphereSouth
	default:
		log.Fatal("hemisphere must be N or S", "value", pflag.Arg(1))
	}
	easting, err := strconv.ParseFloat(pflag.Arg(2), 64)
	if err != nil {
		log.Fatal("bad easting", "value", pflag.Arg(2), "err", err)
	}
	northing, err := strconv.ParseFloat(pflag.Arg(3), 64)
	if err != nil {
		log.Fatal("bad northing", "value", pflag.Arg(3), "err", err)
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

	geo, err := grid.ConvertToGeodetic(utmups.GridCoord{
		Zone:       zone,
		Hemisphere: hemisphere,
		Easting:    easting,
		Northing:   northing,
	})
	if err != nil {
		log.Fatal("conversion failed", "err", err)
	}
	fmt.Printf("latitude = %.9f, longitude = %.9f\n", geo.Lat.Degrees(), geo.Lng.Degrees())
	fmt.Printf("latitude = %s, longitude = %s\n",
		utmups.FormatDMS(geo.Lat, 3, true), utmups.FormatDMS(geo.Lng, 3, true))
}

func parseZone(s string) (utmups.GridZone, error) {
	switch s {
	case "UPS-N", "ups-n":
		return utmups.UPSNorth, nil
	case "UPS-S", "ups-s":
		return utmups.UPSSouth, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return utmups.GridZone(n), nil
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
	fmt.Printf("UTM/UPS grid to Latitude / Longitude conversion\n")
	fmt.Printf("\n")
	fmt.Printf("Usage:\n")
	fmt.Printf("\tgrid2ll [options] zone hemisphere easting northing\n")
	fmt.Printf("\n")
	fmt.Printf("where,\n")
	fmt.Printf("\tzone is a UTM zone number 1-60, UPS-N or UPS-S.\n")
	fmt.Printf("\themisphere is N or S (ignored for UPS zones).\n")
	fmt.Printf("\teasting and northing are in meters.\n")
	fmt.Printf("\n")
	fmt.Printf("Example:\n")
	fmt.Printf("\tgrid2ll 19 N 305290 4724422\n")
	fmt.Printf("\tgrid2ll -e IN 43 N 500000 9000000\n")
	fmt.Printf("\n")
	pflag.PrintDefaults()
}
