package model

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoPoint_ValueScanRoundTrip(t *testing.T) {
	// Stored axis order is (lon, lat).
	original := NewGeoPoint(orb.Point{3.3792, 6.5244})

	value, err := original.Value()
	require.NoError(t, err)
	require.NotNil(t, value)

	var scanned GeoPoint
	require.NoError(t, scanned.Scan(value))

	assert.Equal(t, 3.3792, scanned.Lon())
	assert.Equal(t, 6.5244, scanned.Lat())
	assert.Equal(t, original.Point, scanned.Point)
}

func TestGeoPoint_GormDataType(t *testing.T) {
	assert.Equal(t, "geography(POINT,4326)", GeoPoint{}.GormDataType())
}

func TestGeoPoint_ScanInvalid(t *testing.T) {
	var p GeoPoint
	assert.Error(t, p.Scan([]byte("garbage")))
}
