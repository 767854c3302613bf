// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"depot/internal/domain/entity"
	domainerrors "depot/internal/domain/errors"
	"depot/internal/domain/repository"
	"depot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// Create persists a new pickup location.
func (repo *locationRepository) Create(ctx context.Context, location *entity.PickupLocation) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pickup location")
	}

	// Update the entity with generated values
	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindByID retrieves a pickup location by its unique ID.
func (repo *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PickupLocation, error) {
	var locationM model.PickupLocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find pickup location by ID")
	}

	return toLocationDomain(&locationM), nil
}

// List retrieves all pickup locations ordered by name.
func (repo *locationRepository) List(ctx context.Context) ([]*entity.PickupLocation, error) {
	var locationModels []*model.PickupLocationModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pickup locations")
	}

	locations := make([]*entity.PickupLocation, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// FindNearest performs a PostGIS geographic query for the single active
// location within maxDistanceMeters of the query point, closest first.
// Ties on distance fall back to id so the result is deterministic.
func (repo *locationRepository) FindNearest(ctx context.Context, point orb.Point, maxDistanceMeters float64) (*entity.PickupLocation, error) {
	var locationM model.PickupLocationModel

	// ST_DWithin on geography columns measures in meters and can use the
	// spatial index; ST_Distance only orders the already-filtered rows.
	query := `
		SELECT *
		FROM pickup_locations
		WHERE is_active = true
		  AND ST_DWithin(
		    location,
		    ST_SetSRID(ST_MakePoint(?, ?), 4326),
		    ?
		  )
		ORDER BY ST_Distance(
		  location,
		  ST_SetSRID(ST_MakePoint(?, ?), 4326)
		) ASC, id ASC
		LIMIT 1
	`

	result := repo.db.WithContext(ctx).
		Raw(query, point.Lon(), point.Lat(), maxDistanceMeters, point.Lon(), point.Lat()).
		Scan(&locationM)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find nearest pickup location")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrNoLocationInRange
	}

	return toLocationDomain(&locationM), nil
}

// Update saves the full state of an existing location record.
func (repo *locationRepository) Update(ctx context.Context, location *entity.PickupLocation) error {
	locationM := fromLocationDomain(location)

	result := repo.db.WithContext(ctx).
		Model(&model.PickupLocationModel{}).
		Where("id = ?", location.ID).
		Updates(map[string]any{
			"name":      locationM.Name,
			"address":   locationM.Address,
			"location":  locationM.Location,
			"region_id": locationM.RegionID,
			"is_active": locationM.IsActive,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update pickup location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// Delete physically removes a pickup location by its ID.
func (repo *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PickupLocationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete pickup location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM PickupLocationModel to a domain PickupLocation entity.
func toLocationDomain(data *model.PickupLocationModel) *entity.PickupLocation {
	if data == nil {
		return nil
	}

	return &entity.PickupLocation{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		Point:     data.Location.Point,
		RegionID:  data.RegionID,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromLocationDomain converts a domain PickupLocation entity to a GORM PickupLocationModel.
func fromLocationDomain(data *entity.PickupLocation) *model.PickupLocationModel {
	if data == nil {
		return nil
	}

	return &model.PickupLocationModel{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		Location:  model.NewGeoPoint(data.Point),
		RegionID:  data.RegionID,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
