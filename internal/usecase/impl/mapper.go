// Package impl contains the implementation of the application's business logic.
package impl

import (
	"depot/internal/domain/entity"
	domainerrors "depot/internal/domain/errors"
	"depot/internal/usecase"

	"github.com/google/uuid"
)

// toLocationOutput flattens the stored geodetic point back into separate
// latitude/longitude fields. The storage order is (lon, lat); the public
// shape leads with latitude. This is the one place the axes are transposed.
func toLocationOutput(location *entity.PickupLocation, regionName string) *usecase.LocationOutput {
	if location == nil {
		return nil
	}

	return &usecase.LocationOutput{
		ID:         location.ID.String(),
		Name:       location.Name,
		Address:    location.Address,
		Latitude:   location.Latitude(),
		Longitude:  location.Longitude(),
		RegionID:   location.RegionID.String(),
		RegionName: regionName,
		IsActive:   location.IsActive,
		CreatedAt:  location.CreatedAt,
		UpdatedAt:  location.UpdatedAt,
	}
}

func toAdminSummary(user *entity.AdminUser) *usecase.AdminSummary {
	if user == nil {
		return nil
	}

	summary := &usecase.AdminSummary{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role.String(),
	}
	if user.PickupLocationID != nil {
		locationID := user.PickupLocationID.String()
		summary.PickupLocationID = &locationID
	}

	return summary
}

// parseLocationID validates the syntactic form of a location identifier.
func parseLocationID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidID.WithDetails("location id must be a UUID")
	}

	return parsed, nil
}

// parseUserID validates the syntactic form of a user identifier.
func parseUserID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidID.WithDetails("user id must be a UUID")
	}

	return parsed, nil
}

// parseRegionID validates the syntactic form of a region reference. Semantic
// existence of the region is deliberately not verified at location creation;
// the region service owns that check.
func parseRegionID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidReference.WithDetails("region id must be a UUID")
	}

	return parsed, nil
}
