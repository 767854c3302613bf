// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"depot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLoginCodeNotFound is returned when no usable login code exists.
var ErrLoginCodeNotFound = errors.New("login code not found")

// LoginCodeRepository persists one-time login codes for the credential issuer.
type LoginCodeRepository interface {
	// Create persists a freshly issued code.
	Create(ctx context.Context, code *entity.OneTimeLoginCode) error

	// InvalidateByEmailAndPurpose marks all outstanding codes for the
	// (email, purpose) pair as used. Called before issuing a new code.
	InvalidateByEmailAndPurpose(ctx context.Context, email string, purpose entity.CodePurpose) error

	// FindActiveByEmailAndPurpose retrieves the most recently issued unused
	// code for the (email, purpose) pair. Expiry is checked by the caller so
	// an expired code can be reported distinctly from a missing one.
	FindActiveByEmailAndPurpose(ctx context.Context, email string, purpose entity.CodePurpose) (*entity.OneTimeLoginCode, error)

	// MarkUsed consumes a code so it cannot be replayed.
	MarkUsed(ctx context.Context, id uuid.UUID) error
}
