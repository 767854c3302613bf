// Package model contains the GORM-specific structs mirroring database tables.
package model

import (
	"database/sql/driver"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
	"github.com/pkg/errors"
)

// srid is the spatial reference for all stored points (WGS 84).
const srid = 4326

// GeoPoint stores an orb.Point as a PostGIS geography value. The geodetic
// axis order (longitude, latitude) is kept on the wire and in storage; only
// the response DTOs flip it back to latitude-first.
type GeoPoint struct {
	orb.Point
}

// NewGeoPoint wraps an orb.Point for storage.
func NewGeoPoint(p orb.Point) GeoPoint {
	return GeoPoint{Point: p}
}

// GormDataType tells GORM which column type to migrate to.
func (GeoPoint) GormDataType() string {
	return "geography(POINT,4326)"
}

// Value implements driver.Valuer, encoding the point as EWKB.
func (p GeoPoint) Value() (driver.Value, error) {
	return ewkb.Value(p.Point, srid).Value()
}

// Scan implements sql.Scanner, decoding an EWKB geography column.
func (p *GeoPoint) Scan(value any) error {
	var point orb.Point
	scanner := ewkb.Scanner(&point)
	if err := scanner.Scan(value); err != nil {
		return errors.Wrap(err, "failed to scan geography point")
	}
	p.Point = point

	return nil
}
