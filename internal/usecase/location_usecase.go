// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// CreateLocationInput defines the data required to create a pickup location.
type CreateLocationInput struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RegionID  string  `json:"region_id"`
	IsActive  *bool   `json:"is_active,omitempty"` // Defaults to true.
}

// UpdateLocationInput defines the partial field set for a location update.
// Latitude and longitude must be supplied together or not at all.
type UpdateLocationInput struct {
	Name      *string  `json:"name,omitempty"`
	Address   *string  `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	RegionID  *string  `json:"region_id,omitempty"`
	IsActive  *bool    `json:"is_active,omitempty"`
}

// --- Output DTOs ---

// LocationOutput is the public shape of a pickup location. The stored geodetic
// point is flattened back into separate latitude/longitude fields and the
// region reference is resolved into id plus name.
type LocationOutput struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	RegionID   string    `json:"region_id"`
	RegionName string    `json:"region_name,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LocationUsecase defines location store operations plus the nearest-location
// resolver exposed to the delivery layer.
type LocationUsecase interface {
	// ListLocations returns all locations ordered by name, region names resolved.
	ListLocations(ctx context.Context) ([]*LocationOutput, error)

	// GetLocation returns a single location by id.
	GetLocation(ctx context.Context, id string) (*LocationOutput, error)

	// CreateLocation creates a new pickup location.
	CreateLocation(ctx context.Context, input *CreateLocationInput) (*LocationOutput, error)

	// UpdateLocation applies the fields present in the partial input.
	UpdateLocation(ctx context.Context, id string, input *UpdateLocationInput) (*LocationOutput, error)

	// DeleteLocation physically removes a location.
	DeleteLocation(ctx context.Context, id string) error

	// FindNearest returns the nearest active location within the store's
	// default search radius.
	FindNearest(ctx context.Context, latitude, longitude float64) (*LocationOutput, error)

	// FindNearestAssignable returns the nearest active location within the
	// tighter bound the admin surface uses when binding a depot to a user.
	FindNearestAssignable(ctx context.Context, latitude, longitude float64) (*LocationOutput, error)
}
