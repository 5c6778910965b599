package utmups_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapgrid/utmups"
)

func TestEllipsoidByCode(t *testing.T) {
	we, ok := utmups.EllipsoidByCode("WE")
	require.True(t, ok)
	assert.Equal(t, "WGS 1984", we.Name)
	assert.Equal(t, 6378137.0, we.SemiMajorAxis)
	assert.InDelta(t, 0.00669437999014132, we.Ecc2, 1e-15)
	assert.Equal(t, utmups.WGS84, we)

	in, ok := utmups.EllipsoidByCode("IN")
	require.True(t, ok)
	assert.Equal(t, "International 1924", in.Name)
	assert.Equal(t, 6378388.0, in.SemiMajorAxis)
	assert.InDelta(t, 0.006722670022333322, in.Ecc2, 1e-15)

	_, ok = utmups.EllipsoidByCode("XX")
	assert.False(t, ok)
}

func TestEllipsoidTable(t *testing.T) {
	all := utmups.Ellipsoids()
	assert.Len(t, all, 23)
	seen := map[string]bool{}
	for _, e := range all {
		assert.Len(t, e.Code, 2, "code %q", e.Code)
		assert.False(t, seen[e.Code], "duplicate code %q", e.Code)
		seen[e.Code] = true
		assert.Greater(t, e.SemiMajorAxis, 6.3e6)
		assert.Less(t, e.SemiMajorAxis, 6.4e6)
		assert.Greater(t, e.Ecc2, 0.0066)
		assert.Less(t, e.Ecc2, 0.0069)

		// Every ellipsoid must be usable for grid conversion.
		_, err := utmups.NewGrid(e.SemiMajorAxis, e.Ecc2)
		assert.NoError(t, err, "ellipsoid %s", e.Code)
	}

	// Mutating the returned slice must not affect the table.
	all[0].Code = "??"
	again := utmups.Ellipsoids()
	assert.NotEqual(t, "??", again[0].Code)
}

func TestDatumByCode(t *testing.T) {
	nad27, ok := utmups.DatumByCode("NAS-C")
	require.True(t, ok)
	assert.Equal(t, "CC", nad27.EllipsoidCode)
	assert.Equal(t, -8.0, nad27.ShiftX)
	assert.Equal(t, 160.0, nad27.ShiftY)
	assert.Equal(t, 176.0, nad27.ShiftZ)
	assert.Equal(t, 6378206.4, nad27.Ellipsoid().SemiMajorAxis)

	ed50, ok := utmups.DatumByCode("EUR-M")
	require.True(t, ok)
	assert.Equal(t, "IN", ed50.EllipsoidCode)

	_, ok = utmups.DatumByCode("NOPE")
	assert.False(t, ok)
}

// Every datum must reference an ellipsoid the table knows.
func TestDatumEllipsoidsResolve(t *testing.T) {
	for _, d := range utmups.Datums() {
		e, ok := utmups.EllipsoidByCode(d.EllipsoidCode)
		require.True(t, ok, "datum %s references unknown ellipsoid %q", d.Code, d.EllipsoidCode)
		assert.Equal(t, e, d.Ellipsoid())
	}
}
