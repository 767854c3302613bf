package impl

import (
	"context"
	"testing"

	"depot/internal/domain/entity"
	domainerrors "depot/internal/domain/errors"
	"depot/internal/domain/repository"
	"depot/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// assertAppErrorCode unwraps an error into the application taxonomy and
// checks its business code.
func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}

func TestLocationService_CreateLocation_MissingName(t *testing.T) {
	_, _, service := createTestLocationService(t, testConfig())

	output, err := service.CreateLocation(context.Background(), &usecase.CreateLocationInput{
		Address:   "23 Allen Avenue, Ikeja",
		Latitude:  6.5244,
		Longitude: 3.3792,
		RegionID:  uuid.New().String(),
	})
	assert.Nil(t, output)
	assertAppErrorCode(t, err, "VALIDATION_FAILED")
}

func TestLocationService_CreateLocation_LatitudeOutOfRange(t *testing.T) {
	_, _, service := createTestLocationService(t, testConfig())

	output, err := service.CreateLocation(context.Background(), &usecase.CreateLocationInput{
		Name:      "Polar Depot",
		Address:   "1 Nowhere",
		Latitude:  91,
		Longitude: 3.3792,
		RegionID:  uuid.New().String(),
	})
	assert.Nil(t, output)
	assertAppErrorCode(t, err, "VALIDATION_FAILED")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "latitude")
}

func TestLocationService_CreateLocation_MalformedRegionID(t *testing.T) {
	_, _, service := createTestLocationService(t, testConfig())

	output, err := service.CreateLocation(context.Background(), &usecase.CreateLocationInput{
		Name:      "Ikeja Depot",
		Address:   "23 Allen Avenue, Ikeja",
		Latitude:  6.5244,
		Longitude: 3.3792,
		RegionID:  "not-a-uuid",
	})
	assert.Nil(t, output)
	assertAppErrorCode(t, err, "INVALID_REFERENCE")
}

func TestLocationService_GetLocation_MalformedID(t *testing.T) {
	_, _, service := createTestLocationService(t, testConfig())

	output, err := service.GetLocation(context.Background(), "not-a-uuid")
	assert.Nil(t, output)
	assertAppErrorCode(t, err, "INVALID_ID")
}

func TestLocationService_GetLocation_NotFound(t *testing.T) {
	mockLocationRepo, _, service := createTestLocationService(t, testConfig())

	ctx := context.Background()
	locationID := uuid.New()

	mockLocationRepo.EXPECT().
		FindByID(ctx, locationID).
		Return(nil, repository.ErrLocationNotFound)

	output, err := service.GetLocation(ctx, locationID.String())
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestLocationService_UpdateLocation_LoneLatitude(t *testing.T) {
	_, _, service := createTestLocationService(t, testConfig())

	lat := 6.5244
	output, err := service.UpdateLocation(context.Background(), uuid.New().String(), &usecase.UpdateLocationInput{
		Latitude: &lat,
	})
	assert.Nil(t, output)
	assertAppErrorCode(t, err, "VALIDATION_FAILED")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "latitude and longitude must be updated together", appErr.Details())
}

func TestLocationService_UpdateLocation_EmptyName(t *testing.T) {
	mockLocationRepo, _, service := createTestLocationService(t, testConfig())

	ctx := context.Background()
	locationID := uuid.New()
	empty := ""

	mockLocationRepo.EXPECT().
		FindByID(ctx, locationID).
		Return(&entity.PickupLocation{
			ID:       locationID,
			Name:     "Ikeja Depot",
			Address:  "23 Allen Avenue, Ikeja",
			Point:    orb.Point{3.3792, 6.5244},
			RegionID: uuid.New(),
			IsActive: true,
		}, nil)

	output, err := service.UpdateLocation(ctx, locationID.String(), &usecase.UpdateLocationInput{
		Name: &empty,
	})
	assert.Nil(t, output)
	assertAppErrorCode(t, err, "VALIDATION_FAILED")
}

func TestLocationService_UpdateLocation_NotFound(t *testing.T) {
	mockLocationRepo, _, service := createTestLocationService(t, testConfig())

	ctx := context.Background()
	locationID := uuid.New()
	newName := "Renamed Depot"

	mockLocationRepo.EXPECT().
		FindByID(ctx, locationID).
		Return(nil, repository.ErrLocationNotFound)

	output, err := service.UpdateLocation(ctx, locationID.String(), &usecase.UpdateLocationInput{
		Name: &newName,
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestLocationService_UpdateLocation_WriteReportsNoEffect(t *testing.T) {
	mockLocationRepo, _, service := createTestLocationService(t, testConfig())

	ctx := context.Background()
	locationID := uuid.New()
	newName := "Renamed Depot"

	mockLocationRepo.EXPECT().
		FindByID(ctx, locationID).
		Return(&entity.PickupLocation{
			ID:       locationID,
			Name:     "Ikeja Depot",
			Address:  "23 Allen Avenue",
			Point:    orb.Point{3.3792, 6.5244},
			RegionID: uuid.New(),
			IsActive: true,
		}, nil)

	// The record existed moments ago, so a write touching zero rows is a
	// lost update, not a plain not-found.
	mockLocationRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.PickupLocation")).
		Return(repository.ErrLocationNotFound)

	output, err := service.UpdateLocation(ctx, locationID.String(), &usecase.UpdateLocationInput{
		Name: &newName,
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUpdateFailed)
}

func TestLocationService_DeleteLocation_NotFound(t *testing.T) {
	mockLocationRepo, _, service := createTestLocationService(t, testConfig())

	ctx := context.Background()
	locationID := uuid.New()

	// A second delete of the same id reports not-found.
	mockLocationRepo.EXPECT().
		Delete(ctx, locationID).
		Return(repository.ErrLocationNotFound)

	err := service.DeleteLocation(ctx, locationID.String())
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestLocationService_FindNearest_CoordinateOutOfRange(t *testing.T) {
	_, _, service := createTestLocationService(t, testConfig())

	output, err := service.FindNearest(context.Background(), 6.52, 181)
	assert.Nil(t, output)
	assertAppErrorCode(t, err, "VALIDATION_FAILED")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "longitude")
}

func TestLocationService_FindNearest_NoneInRange(t *testing.T) {
	mockLocationRepo, _, service := createTestLocationService(t, testConfig())

	ctx := context.Background()

	mockLocationRepo.EXPECT().
		FindNearest(ctx, orb.Point{3.38, 6.52}, float64(50000)).
		Return(nil, repository.ErrNoLocationInRange)

	output, err := service.FindNearest(ctx, 6.52, 3.38)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNoNearbyLocation)
}

func TestLocationService_ListLocations_RepositoryError(t *testing.T) {
	mockLocationRepo, _, service := createTestLocationService(t, testConfig())

	ctx := context.Background()

	mockLocationRepo.EXPECT().
		List(ctx).
		Return(nil, errors.New("database error"))

	outputs, err := service.ListLocations(ctx)
	assert.Nil(t, outputs)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list pickup locations")
}
