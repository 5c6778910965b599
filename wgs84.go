package utmups

import "fmt"

// DefaultGrid is a WGS84 ellipsoid based UTM/UPS grid converter.
var DefaultGrid *Grid

func init() {
	var err error
	DefaultGrid, err = NewGrid(WGS84.SemiMajorAxis, WGS84.Ecc2)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 grid converter: %s", err))
	}
}
