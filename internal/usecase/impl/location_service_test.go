package impl

import (
	"context"
	"testing"
	"time"

	"depot/config"
	"depot/internal/domain/entity"
	"depot/internal/domain/repository"
	mockRepo "depot/internal/mocks/repository"
	"depot/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestLocationService(t *testing.T, cfg *config.Config) (*mockRepo.MockLocationRepository, *mockRepo.MockRegionRepository, usecase.LocationUsecase) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	service := NewLocationService(LocationServiceParams{
		LocationRepo: mockLocationRepo,
		RegionRepo:   mockRegionRepo,
		Config:       cfg,
		Logger:       testLogger(),
	})

	return mockLocationRepo, mockRegionRepo, service
}

func TestLocationService_CreateLocation_Success(t *testing.T) {
	mockLocationRepo, mockRegionRepo, service := createTestLocationService(t, testConfig())

	ctx := context.Background()
	regionID := uuid.New()
	input := &usecase.CreateLocationInput{
		Name:      "Ikeja Depot",
		Address:   "23 Allen Avenue, Ikeja",
		Latitude:  6.5244,
		Longitude: 3.3792,
		RegionID:  regionID.String(),
	}

	mockLocationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PickupLocation")).
		Return(nil)

	mockRegionRepo.EXPECT().
		FindByID(ctx, regionID).
		Return(&entity.Region{ID: regionID, Name: "Lagos"}, nil)

	output, err := service.CreateLocation(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Name, output.Name)
	assert.Equal(t, input.Address, output.Address)
	assert.Equal(t, 6.5244, output.Latitude)
	assert.Equal(t, 3.3792, output.Longitude)
	assert.Equal(t, regionID.String(), output.RegionID)
	assert.Equal(t, "Lagos", output.RegionName)
	assert.True(t, output.IsActive)
}

func TestLocationService_CreateLocation_InactiveOnRequest(t *testing.T) {
	mockLocationRepo, mockRegionRepo, service := createTestLocationService(t, testConfig())

	ctx := context.Background()
	regionID := uuid.New()
	inactive := false
	input := &usecase.CreateLocationInput{
		Name:      "Seasonal Depot",
		Address:   "1 Harbour Road",
		Latitude:  6.45,
		Longitude: 3.39,
		RegionID:  regionID.String(),
		IsActive:  &inactive,
	}

	var created *entity.PickupLocation
	mockLocationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PickupLocation")).
		Run(func(_ context.Context, location *entity.PickupLocation) {
			created = location
		}).
		Return(nil)

	mockRegionRepo.EXPECT().
		FindByID(ctx, regionID).
		Return(&entity.Region{ID: regionID, Name: "Lagos"}, nil)

	output, err := service.CreateLocation(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.False(t, created.IsActive)
	assert.False(t, output.IsActive)
	assert.Equal(t, orb.Point{3.39, 6.45}, created.Point)
}

func TestLocationService_CreateLocation_UnknownRegionYieldsEmptyName(t *testing.T) {
	mockLocationRepo, mockRegionRepo, service := createTestLocationService(t, testConfig())

	ctx := context.Background()
	regionID := uuid.New()
	input := &usecase.CreateLocationInput{
		Name:      "Orphan Depot",
		Address:   "5 Nowhere Street",
		Latitude:  9.0765,
		Longitude: 7.3986,
		RegionID:  regionID.String(),
	}

	mockLocationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PickupLocation")).
		Return(nil)

	mockRegionRepo.EXPECT().
		FindByID(ctx, regionID).
		Return(nil, repository.ErrRegionNotFound)

	output, err := service.CreateLocation(ctx, input)
	require.NoError(t, err)
	assert.Empty(t, output.RegionName)
	assert.Equal(t, regionID.String(), output.RegionID)
}

func TestLocationService_ListLocations(t *testing.T) {
	mockLocationRepo, mockRegionRepo, service := createTestLocationService(t, testConfig())

	ctx := context.Background()
	regionA := uuid.New()
	regionB := uuid.New()
	locations := []*entity.PickupLocation{
		{ID: uuid.New(), Name: "Apapa Depot", Point: orb.Point{3.36, 6.44}, RegionID: regionA, IsActive: true},
		{ID: uuid.New(), Name: "Ikeja Depot", Point: orb.Point{3.34, 6.60}, RegionID: regionA, IsActive: true},
		{ID: uuid.New(), Name: "Wuse Depot", Point: orb.Point{7.46, 9.07}, RegionID: regionB, IsActive: true},
	}

	mockLocationRepo.EXPECT().
		List(ctx).
		Return(locations, nil)

	// Region lookups are batched and deduplicated.
	mockRegionRepo.EXPECT().
		FindNamesByIDs(ctx, []uuid.UUID{regionA, regionB}).
		Return(map[uuid.UUID]string{regionA: "Lagos", regionB: "Abuja"}, nil)

	outputs, err := service.ListLocations(ctx)
	require.NoError(t, err)
	require.Len(t, outputs, 3)
	assert.Equal(t, "Lagos", outputs[0].RegionName)
	assert.Equal(t, "Lagos", outputs[1].RegionName)
	assert.Equal(t, "Abuja", outputs[2].RegionName)
}

func TestLocationService_GetLocation_Success(t *testing.T) {
	mockLocationRepo, mockRegionRepo, service := createTestLocationService(t, testConfig())

	ctx := context.Background()
	regionID := uuid.New()
	location := &entity.PickupLocation{
		ID:       uuid.New(),
		Name:     "Ikeja Depot",
		Address:  "23 Allen Avenue, Ikeja",
		Point:    orb.Point{3.3792, 6.5244},
		RegionID: regionID,
		IsActive: true,
	}

	mockLocationRepo.EXPECT().
		FindByID(ctx, location.ID).
		Return(location, nil)

	mockRegionRepo.EXPECT().
		FindByID(ctx, regionID).
		Return(&entity.Region{ID: regionID, Name: "Lagos"}, nil)

	output, err := service.GetLocation(ctx, location.ID.String())
	require.NoError(t, err)
	assert.Equal(t, location.ID.String(), output.ID)
	assert.Equal(t, 6.5244, output.Latitude)
	assert.Equal(t, 3.3792, output.Longitude)
}

func TestLocationService_UpdateLocation_Success(t *testing.T) {
	mockLocationRepo, mockRegionRepo, service := createTestLocationService(t, testConfig())

	ctx := context.Background()
	regionID := uuid.New()
	locationID := uuid.New()
	newName := "Ikeja Depot II"
	input := &usecase.UpdateLocationInput{Name: &newName}

	existing := &entity.PickupLocation{
		ID:        locationID,
		Name:      "Ikeja Depot",
		Address:   "23 Allen Avenue, Ikeja",
		Point:     orb.Point{3.3792, 6.5244},
		RegionID:  regionID,
		IsActive:  true,
		UpdatedAt: time.Now().Add(-time.Hour),
	}

	mockLocationRepo.EXPECT().
		FindByID(ctx, locationID).
		Return(existing, nil)

	mockLocationRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.PickupLocation")).
		Return(nil)

	mockRegionRepo.EXPECT().
		FindByID(ctx, regionID).
		Return(&entity.Region{ID: regionID, Name: "Lagos"}, nil)

	output, err := service.UpdateLocation(ctx, locationID.String(), input)
	require.NoError(t, err)
	assert.Equal(t, newName, output.Name)
	// Untouched fields carry through.
	assert.Equal(t, 6.5244, output.Latitude)
	assert.Equal(t, 3.3792, output.Longitude)
}

func TestLocationService_UpdateLocation_CoordinatePair(t *testing.T) {
	mockLocationRepo, mockRegionRepo, service := createTestLocationService(t, testConfig())

	ctx := context.Background()
	regionID := uuid.New()
	locationID := uuid.New()
	newLat := 9.0765
	newLng := 7.3986
	input := &usecase.UpdateLocationInput{Latitude: &newLat, Longitude: &newLng}

	existing := &entity.PickupLocation{
		ID:       locationID,
		Name:     "Ikeja Depot",
		Address:  "23 Allen Avenue, Ikeja",
		Point:    orb.Point{3.3792, 6.5244},
		RegionID: regionID,
		IsActive: true,
	}

	mockLocationRepo.EXPECT().
		FindByID(ctx, locationID).
		Return(existing, nil)

	var updated *entity.PickupLocation
	mockLocationRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.PickupLocation")).
		Run(func(_ context.Context, location *entity.PickupLocation) {
			updated = location
		}).
		Return(nil)

	mockRegionRepo.EXPECT().
		FindByID(ctx, regionID).
		Return(&entity.Region{ID: regionID, Name: "Lagos"}, nil)

	output, err := service.UpdateLocation(ctx, locationID.String(), input)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, orb.Point{newLng, newLat}, updated.Point)
	assert.Equal(t, newLat, output.Latitude)
	assert.Equal(t, newLng, output.Longitude)
}

func TestLocationService_DeleteLocation_Success(t *testing.T) {
	mockLocationRepo, _, service := createTestLocationService(t, testConfig())

	ctx := context.Background()
	locationID := uuid.New()

	mockLocationRepo.EXPECT().
		Delete(ctx, locationID).
		Return(nil)

	err := service.DeleteLocation(ctx, locationID.String())
	require.NoError(t, err)
}

func TestLocationService_FindNearest_UsesStoreDefaultRadius(t *testing.T) {
	cfg := &config.Config{
		Pickup: &config.PickupConfig{
			SearchRadiusMeters: 50000,
			AssignRadiusMeters: 20000,
		},
	}
	mockLocationRepo, mockRegionRepo, service := createTestLocationService(t, cfg)

	ctx := context.Background()
	regionID := uuid.New()
	nearest := &entity.PickupLocation{
		ID:       uuid.New(),
		Name:     "Ikeja Depot",
		Point:    orb.Point{3.3792, 6.5244},
		RegionID: regionID,
		IsActive: true,
	}

	mockLocationRepo.EXPECT().
		FindNearest(ctx, orb.Point{3.38, 6.52}, float64(50000)).
		Return(nearest, nil)

	mockRegionRepo.EXPECT().
		FindByID(ctx, regionID).
		Return(&entity.Region{ID: regionID, Name: "Lagos"}, nil)

	output, err := service.FindNearest(ctx, 6.52, 3.38)
	require.NoError(t, err)
	assert.Equal(t, nearest.ID.String(), output.ID)
}

func TestLocationService_FindNearestAssignable_UsesAssignmentBound(t *testing.T) {
	cfg := &config.Config{
		Pickup: &config.PickupConfig{
			SearchRadiusMeters: 50000,
			AssignRadiusMeters: 20000,
		},
	}
	mockLocationRepo, mockRegionRepo, service := createTestLocationService(t, cfg)

	ctx := context.Background()
	regionID := uuid.New()
	nearest := &entity.PickupLocation{
		ID:       uuid.New(),
		Name:     "Apapa Depot",
		Point:    orb.Point{3.36, 6.44},
		RegionID: regionID,
		IsActive: true,
	}

	mockLocationRepo.EXPECT().
		FindNearest(ctx, orb.Point{3.36, 6.45}, float64(20000)).
		Return(nearest, nil)

	mockRegionRepo.EXPECT().
		FindByID(ctx, regionID).
		Return(&entity.Region{ID: regionID, Name: "Lagos"}, nil)

	output, err := service.FindNearestAssignable(ctx, 6.45, 3.36)
	require.NoError(t, err)
	assert.Equal(t, nearest.ID.String(), output.ID)
}
