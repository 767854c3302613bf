// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// PickupLocation is a physical depot with a geodetic point, belonging to a
// region and optionally managed by exactly one admin user.
//
// The point is stored in geodetic axis order (longitude first); public
// responses expose separate latitude/longitude fields. Always go through
// Latitude()/Longitude(), never through raw point indexing.
type PickupLocation struct {
	ID        uuid.UUID // Generated at creation, immutable.
	Name      string    // Display name of the depot, non-empty.
	Address   string    // Street address, non-empty.
	Point     orb.Point // Geodetic point, (lon, lat) order.
	RegionID  uuid.UUID // Reference to the administrative region.
	IsActive  bool      // Controls eligibility for nearest-location queries.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Latitude returns the point's latitude (the second stored component).
func (l *PickupLocation) Latitude() float64 {
	return l.Point.Lat()
}

// Longitude returns the point's longitude (the first stored component).
func (l *PickupLocation) Longitude() float64 {
	return l.Point.Lon()
}

// Region is an administrative grouping referenced by pickup locations.
// Only the name resolution lives in this service; region lifecycle is
// managed elsewhere.
type Region struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
