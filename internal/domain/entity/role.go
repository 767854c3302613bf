// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin is a super-admin who may also hold a pickup location.
	RoleAdmin Role = "ADMIN"
	// RolePickupAdmin manages exactly one pickup location.
	RolePickupAdmin Role = "PICKUP_ADMIN"
	// RoleCustomer is a regular account with no management rights.
	RoleCustomer Role = "CUSTOMER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RolePickupAdmin, RoleCustomer:
		return true
	default:
		return false
	}
}

// RoleAfterAssignment is the explicit state transition applied when a pickup
// location is assigned to a user:
//
//	ADMIN        -> ADMIN        (super-admins keep their role)
//	PICKUP_ADMIN -> PICKUP_ADMIN
//	anything else -> PICKUP_ADMIN (promotion)
func RoleAfterAssignment(current Role) Role {
	if current == RoleAdmin {
		return RoleAdmin
	}

	return RolePickupAdmin
}
