package impl

import (
	"context"
	"testing"

	"depot/internal/domain/entity"
	domainerrors "depot/internal/domain/errors"
	"depot/internal/domain/repository"
	mockRepo "depot/internal/mocks/repository"
	mockUsecase "depot/internal/mocks/usecase"
	"depot/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type locationAdminServiceFixture struct {
	txManager    *mockRepo.MockTransactionManager
	locationRepo *mockRepo.MockLocationRepository
	userRepo     *mockRepo.MockUserRepository
	regionRepo   *mockRepo.MockRegionRepository
	authUC       *mockUsecase.MockAdminAuthUsecase
	service      usecase.LocationAdminUsecase
}

func createTestLocationAdminService(t *testing.T) *locationAdminServiceFixture {
	fx := &locationAdminServiceFixture{
		txManager:    mockRepo.NewMockTransactionManager(t),
		locationRepo: mockRepo.NewMockLocationRepository(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		regionRepo:   mockRepo.NewMockRegionRepository(t),
		authUC:       mockUsecase.NewMockAdminAuthUsecase(t),
	}
	fx.service = NewLocationAdminService(LocationAdminServiceParams{
		TxManager:    fx.txManager,
		LocationRepo: fx.locationRepo,
		UserRepo:     fx.userRepo,
		RegionRepo:   fx.regionRepo,
		AuthUC:       fx.authUC,
		Logger:       testLogger(),
	})

	return fx
}

func validCreateWithNewAdminInput(regionID uuid.UUID) *usecase.CreateWithNewAdminInput {
	return &usecase.CreateWithNewAdminInput{
		Location: usecase.CreateLocationInput{
			Name:      "Ikeja Depot",
			Address:   "23 Allen Avenue, Ikeja",
			Latitude:  6.5244,
			Longitude: 3.3792,
			RegionID:  regionID.String(),
		},
		Admin: usecase.NewAdminInput{
			FirstName: "Ada",
			LastName:  "Obi",
			Email:     "ada.obi@example.com",
			Phone:     "+2348012345678",
		},
	}
}

func TestLocationAdminService_CreateWithNewAdmin_Success(t *testing.T) {
	fx := createTestLocationAdminService(t)

	ctx := context.Background()
	regionID := uuid.New()
	input := validCreateWithNewAdminInput(regionID)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Admin.Email).
		Return(nil, repository.ErrUserNotFound)

	var createdAdmin *entity.AdminUser
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txLocationRepo := mockRepo.NewMockLocationRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewLocationRepository().Return(txLocationRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)

			txLocationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.PickupLocation")).
				Return(nil)
			txUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.AdminUser")).
				Run(func(_ context.Context, user *entity.AdminUser) {
					createdAdmin = user
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	fx.authUC.EXPECT().
		IssueLoginCode(ctx, input.Admin.Email).
		Return(nil)

	fx.regionRepo.EXPECT().
		FindByID(ctx, regionID).
		Return(&entity.Region{ID: regionID, Name: "Lagos"}, nil)

	output, err := fx.service.CreateWithNewAdmin(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	require.NotNil(t, createdAdmin)

	assert.Equal(t, entity.RolePickupAdmin, createdAdmin.Role)
	assert.True(t, createdAdmin.EmailVerified)
	assert.True(t, createdAdmin.IsActive)
	require.NotNil(t, createdAdmin.PickupLocationID)

	assert.Equal(t, "Lagos", output.Location.RegionName)
	assert.Equal(t, input.Admin.Email, output.Admin.Email)
	assert.Equal(t, entity.RolePickupAdmin.String(), output.Admin.Role)
	require.NotNil(t, output.Admin.PickupLocationID)
	assert.Equal(t, output.Location.ID, *output.Admin.PickupLocationID)
}

func TestLocationAdminService_CreateWithNewAdmin_EmailTaken(t *testing.T) {
	fx := createTestLocationAdminService(t)

	ctx := context.Background()
	input := validCreateWithNewAdminInput(uuid.New())

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Admin.Email).
		Return(&entity.AdminUser{ID: uuid.New(), Email: input.Admin.Email}, nil)

	output, err := fx.service.CreateWithNewAdmin(ctx, input)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAdminEmailInUse)
}

func TestLocationAdminService_CreateWithNewAdmin_IssuanceFailurePropagates(t *testing.T) {
	fx := createTestLocationAdminService(t)

	ctx := context.Background()
	input := validCreateWithNewAdminInput(uuid.New())

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Admin.Email).
		Return(nil, repository.ErrUserNotFound)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txLocationRepo := mockRepo.NewMockLocationRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewLocationRepository().Return(txLocationRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)
			txLocationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PickupLocation")).Return(nil)
			txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AdminUser")).Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	fx.authUC.EXPECT().
		IssueLoginCode(ctx, input.Admin.Email).
		Return(assert.AnError)

	// The location and admin are committed; issuance failure still surfaces.
	output, err := fx.service.CreateWithNewAdmin(ctx, input)
	assert.Nil(t, output)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "login code issuance failed")
}

func TestLocationAdminService_CreateForExistingAdmin_Success(t *testing.T) {
	fx := createTestLocationAdminService(t)

	ctx := context.Background()
	regionID := uuid.New()
	adminID := uuid.New()
	admin := &entity.AdminUser{
		ID:        adminID,
		FirstName: "Ada",
		LastName:  "Obi",
		Email:     "ada.obi@example.com",
		Role:      entity.RoleAdmin,
		IsActive:  true,
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, adminID).
		Return(admin, nil)

	var attached *entity.AdminUser
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txLocationRepo := mockRepo.NewMockLocationRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewLocationRepository().Return(txLocationRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)

			txLocationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.PickupLocation")).
				Return(nil)
			txUserRepo.EXPECT().
				FindByID(ctx, adminID).
				Return(&entity.AdminUser{
					ID:        adminID,
					FirstName: "Ada",
					LastName:  "Obi",
					Email:     "ada.obi@example.com",
					Role:      entity.RoleAdmin,
					IsActive:  true,
				}, nil)
			txUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.AdminUser")).
				Run(func(_ context.Context, user *entity.AdminUser) {
					attached = user
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	fx.regionRepo.EXPECT().
		FindByID(ctx, regionID).
		Return(&entity.Region{ID: regionID, Name: "Lagos"}, nil)

	output, err := fx.service.CreateForExistingAdmin(ctx, adminID.String(), &usecase.CreateLocationInput{
		Name:      "Ikeja Depot",
		Address:   "23 Allen Avenue, Ikeja",
		Latitude:  6.5244,
		Longitude: 3.3792,
		RegionID:  regionID.String(),
	})
	require.NoError(t, err)
	require.NotNil(t, attached)

	// The attachment keeps the ADMIN role; no promotion happens here.
	assert.Equal(t, entity.RoleAdmin, attached.Role)
	require.NotNil(t, attached.PickupLocationID)
	assert.Equal(t, output.Location.ID, attached.PickupLocationID.String())
	assert.Equal(t, entity.RoleAdmin.String(), output.Admin.Role)
}

func TestLocationAdminService_AssignLocation_Success(t *testing.T) {
	fx := createTestLocationAdminService(t)

	ctx := context.Background()
	regionID := uuid.New()
	locationID := uuid.New()
	userID := uuid.New()

	location := &entity.PickupLocation{
		ID:       locationID,
		Name:     "Ikeja Depot",
		Point:    orb.Point{3.3792, 6.5244},
		RegionID: regionID,
		IsActive: true,
	}
	user := &entity.AdminUser{
		ID:        userID,
		FirstName: "Chidi",
		LastName:  "Eze",
		Email:     "chidi.eze@example.com",
		Role:      entity.RoleCustomer,
		IsActive:  true,
	}

	fx.locationRepo.EXPECT().
		FindByID(ctx, locationID).
		Return(location, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)

	fx.userRepo.EXPECT().
		FindByPickupLocationID(ctx, locationID).
		Return(nil, repository.ErrUserNotFound)

	var updated *entity.AdminUser
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.AdminUser")).
		Run(func(_ context.Context, u *entity.AdminUser) {
			updated = u
		}).
		Return(nil)

	fx.regionRepo.EXPECT().
		FindByID(ctx, regionID).
		Return(&entity.Region{ID: regionID, Name: "Lagos"}, nil)

	output, err := fx.service.AssignLocation(ctx, locationID.String(), userID.String())
	require.NoError(t, err)
	require.NotNil(t, updated)

	// A customer taking over a depot is promoted to pickup admin.
	assert.Equal(t, entity.RolePickupAdmin, updated.Role)
	require.NotNil(t, updated.PickupLocationID)
	assert.Equal(t, locationID, *updated.PickupLocationID)
	assert.Equal(t, entity.RolePickupAdmin.String(), output.Admin.Role)
}

func TestLocationAdminService_AssignLocation_SelfReassignIsNoop(t *testing.T) {
	fx := createTestLocationAdminService(t)

	ctx := context.Background()
	regionID := uuid.New()
	locationID := uuid.New()
	userID := uuid.New()

	location := &entity.PickupLocation{
		ID:       locationID,
		Name:     "Ikeja Depot",
		Point:    orb.Point{3.3792, 6.5244},
		RegionID: regionID,
		IsActive: true,
	}
	holder := &entity.AdminUser{
		ID:               userID,
		Email:            "ada.obi@example.com",
		Role:             entity.RolePickupAdmin,
		PickupLocationID: &locationID,
		IsActive:         true,
	}

	fx.locationRepo.EXPECT().
		FindByID(ctx, locationID).
		Return(location, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(holder, nil)

	fx.userRepo.EXPECT().
		FindByPickupLocationID(ctx, locationID).
		Return(holder, nil)

	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.AdminUser")).
		Return(nil)

	fx.regionRepo.EXPECT().
		FindByID(ctx, regionID).
		Return(&entity.Region{ID: regionID, Name: "Lagos"}, nil)

	output, err := fx.service.AssignLocation(ctx, locationID.String(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, entity.RolePickupAdmin.String(), output.Admin.Role)
}

func TestLocationAdminService_AssignLocation_AdminKeepsRole(t *testing.T) {
	fx := createTestLocationAdminService(t)

	ctx := context.Background()
	regionID := uuid.New()
	locationID := uuid.New()
	userID := uuid.New()

	location := &entity.PickupLocation{
		ID:       locationID,
		Name:     "Ikeja Depot",
		Point:    orb.Point{3.3792, 6.5244},
		RegionID: regionID,
		IsActive: true,
	}
	superAdmin := &entity.AdminUser{
		ID:       userID,
		Email:    "root@example.com",
		Role:     entity.RoleAdmin,
		IsActive: true,
	}

	fx.locationRepo.EXPECT().
		FindByID(ctx, locationID).
		Return(location, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(superAdmin, nil)

	fx.userRepo.EXPECT().
		FindByPickupLocationID(ctx, locationID).
		Return(nil, repository.ErrUserNotFound)

	var updated *entity.AdminUser
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.AdminUser")).
		Run(func(_ context.Context, u *entity.AdminUser) {
			updated = u
		}).
		Return(nil)

	fx.regionRepo.EXPECT().
		FindByID(ctx, regionID).
		Return(&entity.Region{ID: regionID, Name: "Lagos"}, nil)

	_, err := fx.service.AssignLocation(ctx, locationID.String(), userID.String())
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, entity.RoleAdmin, updated.Role)
}
