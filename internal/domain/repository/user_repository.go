// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"depot/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for the user directory.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when creating a user with an email that
	// already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrLocationTaken is returned when a write would make two users
	// reference the same pickup location. Backed by a partial unique index,
	// so the application-level check has an authoritative guard.
	ErrLocationTaken = errors.New("pickup location already claimed by another user")
)

// UserRepository defines the operations this service consumes from the user
// directory.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error)

	// FindByPickupLocationID retrieves the user currently holding the given
	// location, if any.
	FindByPickupLocationID(ctx context.Context, locationID uuid.UUID) (*entity.AdminUser, error)

	// Create persists a new user entity.
	Create(ctx context.Context, user *entity.AdminUser) error

	// Update modifies an existing user entity. Role and location reference
	// changes go through a single Update call so they land atomically.
	Update(ctx context.Context, user *entity.AdminUser) error
}
