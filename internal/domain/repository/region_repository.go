// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"depot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRegionNotFound is returned when a region is not found.
var ErrRegionNotFound = errors.New("region not found")

// RegionRepository is the read side of the region directory, used to resolve
// region names in location responses.
type RegionRepository interface {
	// FindByID retrieves a single region by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Region, error)

	// FindNamesByIDs resolves region names for a set of IDs in one query.
	// IDs with no matching region are simply absent from the result map.
	FindNamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}
