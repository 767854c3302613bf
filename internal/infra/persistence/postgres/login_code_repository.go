package postgres

import (
	"context"
	"time"

	"depot/internal/domain/entity"
	domainerrors "depot/internal/domain/errors"
	"depot/internal/domain/repository"
	"depot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// loginCodeRepository implements the repository.LoginCodeRepository interface.
type loginCodeRepository struct {
	db *gorm.DB
}

// NewLoginCodeRepository is the constructor for loginCodeRepository.
func NewLoginCodeRepository(db *gorm.DB) repository.LoginCodeRepository {
	return &loginCodeRepository{
		db: db,
	}
}

// Create persists a freshly issued login code.
func (repo *loginCodeRepository) Create(ctx context.Context, code *entity.OneTimeLoginCode) error {
	codeM := fromLoginCodeDomain(code)

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create login code")
	}

	code.ID = codeM.ID
	code.CreatedAt = codeM.CreatedAt

	return nil
}

// InvalidateByEmailAndPurpose marks all outstanding codes for the pair as
// used. Zero affected rows is fine, there may simply be nothing to revoke.
func (repo *loginCodeRepository) InvalidateByEmailAndPurpose(ctx context.Context, email string, purpose entity.CodePurpose) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.OneTimeLoginCodeModel{}).
		Where("email = ? AND purpose = ? AND used_at IS NULL", email, purpose.String()).
		Update("used_at", time.Now()).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to invalidate login codes")
	}

	return nil
}

// FindActiveByEmailAndPurpose retrieves the most recently issued unused code
// for the pair. Expiry is left to the caller.
func (repo *loginCodeRepository) FindActiveByEmailAndPurpose(ctx context.Context, email string, purpose entity.CodePurpose) (*entity.OneTimeLoginCode, error) {
	var codeM model.OneTimeLoginCodeModel

	if err := repo.db.WithContext(ctx).
		Where("email = ? AND purpose = ? AND used_at IS NULL", email, purpose.String()).
		Order("created_at DESC").
		First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLoginCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find active login code")
	}

	return toLoginCodeDomain(&codeM), nil
}

// MarkUsed consumes a code so it cannot be replayed.
func (repo *loginCodeRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OneTimeLoginCodeModel{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", time.Now())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark login code used")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLoginCodeNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLoginCodeDomain converts a GORM OneTimeLoginCodeModel to a domain entity.
func toLoginCodeDomain(data *model.OneTimeLoginCodeModel) *entity.OneTimeLoginCode {
	if data == nil {
		return nil
	}

	return &entity.OneTimeLoginCode{
		ID:        data.ID,
		Email:     data.Email,
		CodeHash:  data.CodeHash,
		Purpose:   entity.CodePurpose(data.Purpose),
		ExpiresAt: data.ExpiresAt,
		UsedAt:    data.UsedAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromLoginCodeDomain converts a domain entity to a GORM OneTimeLoginCodeModel.
func fromLoginCodeDomain(data *entity.OneTimeLoginCode) *model.OneTimeLoginCodeModel {
	if data == nil {
		return nil
	}

	return &model.OneTimeLoginCodeModel{
		ID:        data.ID,
		Email:     data.Email,
		CodeHash:  data.CodeHash,
		Purpose:   data.Purpose.String(),
		ExpiresAt: data.ExpiresAt,
		UsedAt:    data.UsedAt,
		CreatedAt: data.CreatedAt,
	}
}
