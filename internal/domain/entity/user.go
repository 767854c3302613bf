// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser represents an account in the user directory. At most one pickup
// location is referenced by a given user's PickupLocationID; the admin
// workflow enforces that each location is claimed by at most one user.
type AdminUser struct {
	ID               uuid.UUID
	FirstName        string
	LastName         string
	Email            string // Globally unique login identifier.
	Phone            string // Optional.
	Role             Role
	PickupLocationID *uuid.UUID // Nil when the user manages no location.
	EmailVerified    bool
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// FullName returns the display name used in responses and notifications.
func (u *AdminUser) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}

// ManagesLocation reports whether the user currently holds a location.
func (u *AdminUser) ManagesLocation() bool {
	return u.PickupLocationID != nil
}
