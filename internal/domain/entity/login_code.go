// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CodePurpose defines what a one-time login code authorizes.
type CodePurpose string

const (
	// PurposeAdminLogin is the passwordless admin dashboard login flow.
	PurposeAdminLogin CodePurpose = "ADMIN_LOGIN"
)

// String returns the string representation of the CodePurpose.
func (p CodePurpose) String() string {
	return string(p)
}

// OneTimeLoginCode is a short-lived numeric credential. Only the bcrypt hash
// of the code is stored; issuing a new code invalidates all outstanding codes
// for the same (email, purpose) pair.
type OneTimeLoginCode struct {
	ID        uuid.UUID
	Email     string
	CodeHash  string
	Purpose   CodePurpose
	ExpiresAt time.Time
	UsedAt    *time.Time // Nil until the code is consumed.
	CreatedAt time.Time
}

// IsExpired reports whether the code is past its expiry at the given instant.
func (c *OneTimeLoginCode) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
