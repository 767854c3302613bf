// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"depot/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Domain-specific errors for location persistence.
var (
	// ErrLocationNotFound is returned when a pickup location does not exist.
	ErrLocationNotFound = errors.New("pickup location not found")
	// ErrNoLocationInRange is returned by FindNearest when no active location
	// lies within the requested radius.
	ErrNoLocationInRange = errors.New("no active pickup location within range")
)

// LocationRepository defines the standard operations for pickup-location persistence.
type LocationRepository interface {
	// Create persists a new pickup location. The region reference is only
	// validated syntactically by the caller; existence is not checked here.
	Create(ctx context.Context, location *entity.PickupLocation) error

	// FindByID retrieves a single location by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PickupLocation, error)

	// List retrieves all locations ordered by name ascending.
	List(ctx context.Context) ([]*entity.PickupLocation, error)

	// FindNearest returns the single active location whose point lies within
	// maxDistanceMeters of the query point, chosen by minimum geodesic
	// distance. Ties are broken by id, an arbitrary but deterministic order.
	FindNearest(ctx context.Context, point orb.Point, maxDistanceMeters float64) (*entity.PickupLocation, error)

	// Update saves the full state of an existing location record.
	Update(ctx context.Context, location *entity.PickupLocation) error

	// Delete physically removes a location by its ID.
	// Returns ErrLocationNotFound when no record was removed.
	Delete(ctx context.Context, id uuid.UUID) error
}
