package postgres

import (
	"context"

	"depot/internal/domain/entity"
	"depot/internal/domain/repository"
	"depot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// regionRepository implements the repository.RegionRepository interface.
// It is read-only; region lifecycle is owned by another service.
type regionRepository struct {
	db *gorm.DB
}

// NewRegionRepository is the constructor for regionRepository.
func NewRegionRepository(db *gorm.DB) repository.RegionRepository {
	return &regionRepository{
		db: db,
	}
}

// FindByID retrieves a region by its unique ID.
func (repo *regionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Region, error) {
	var regionM model.RegionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&regionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegionNotFound
		}

		return nil, errors.Wrap(err, "failed to find region by ID")
	}

	return toRegionDomain(&regionM), nil
}

// FindNamesByIDs resolves region names for a set of IDs in one query.
func (repo *regionRepository) FindNamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	var regionModels []*model.RegionModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&regionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find regions by IDs")
	}

	names := make(map[uuid.UUID]string, len(regionModels))
	for _, regionM := range regionModels {
		names[regionM.ID] = regionM.Name
	}

	return names, nil
}

// toRegionDomain converts a GORM RegionModel to a domain Region entity.
func toRegionDomain(data *model.RegionModel) *entity.Region {
	if data == nil {
		return nil
	}

	return &entity.Region{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
