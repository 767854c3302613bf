package usecase

import "context"

// NewAdminInput defines the identity fields for a first-time location admin.
type NewAdminInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// CreateWithNewAdminInput couples a new location with its first-time admin.
type CreateWithNewAdminInput struct {
	Location CreateLocationInput `json:"location"`
	Admin    NewAdminInput       `json:"admin"`
}

// AdminSummary is the minimal user identity returned by workflow operations.
type AdminSummary struct {
	ID               string  `json:"id"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Email            string  `json:"email"`
	Role             string  `json:"role"`
	PickupLocationID *string `json:"pickup_location_id,omitempty"`
}

// LocationWithAdminOutput pairs a formatted location with its admin summary.
type LocationWithAdminOutput struct {
	Location *LocationOutput `json:"location"`
	Admin    *AdminSummary   `json:"admin"`
}

// LocationAdminUsecase orchestrates the location-to-admin binding workflow.
// It enforces the 1:1 invariant between pickup locations and the users that
// manage them, and the role promotion rules.
type LocationAdminUsecase interface {
	// CreateWithNewAdmin creates a location together with a brand-new
	// PICKUP_ADMIN account and kicks off credential issuance for it.
	CreateWithNewAdmin(ctx context.Context, input *CreateWithNewAdminInput) (*LocationWithAdminOutput, error)

	// CreateForExistingAdmin creates a location and attaches it to an
	// existing super-admin (role ADMIN) who holds no location yet.
	CreateForExistingAdmin(ctx context.Context, userID string, location *CreateLocationInput) (*LocationWithAdminOutput, error)

	// AssignLocation binds an existing location to an existing user,
	// promoting the user to PICKUP_ADMIN unless they are already ADMIN.
	// Re-assigning a location to its current holder is a no-op success.
	AssignLocation(ctx context.Context, locationID, userID string) (*LocationWithAdminOutput, error)
}
