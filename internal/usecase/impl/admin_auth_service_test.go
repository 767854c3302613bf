package impl

import (
	"context"
	"testing"
	"time"

	"depot/config"
	"depot/internal/domain/entity"
	domainerrors "depot/internal/domain/errors"
	"depot/internal/domain/repository"
	"depot/internal/domain/service"
	mockRepo "depot/internal/mocks/repository"
	mockService "depot/internal/mocks/service"
	"depot/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminAuthServiceFixture struct {
	userRepo      *mockRepo.MockUserRepository
	loginCodeRepo *mockRepo.MockLoginCodeRepository
	hasher        *mockService.MockCodeHasher
	notifier      *mockService.MockLoginCodeNotifier
	tokenService  *mockService.MockTokenService
	service       usecase.AdminAuthUsecase
}

func createTestAdminAuthService(t *testing.T) *adminAuthServiceFixture {
	fx := &adminAuthServiceFixture{
		userRepo:      mockRepo.NewMockUserRepository(t),
		loginCodeRepo: mockRepo.NewMockLoginCodeRepository(t),
		hasher:        mockService.NewMockCodeHasher(t),
		notifier:      mockService.NewMockLoginCodeNotifier(t),
		tokenService:  mockService.NewMockTokenService(t),
	}
	fx.service = NewAdminAuthService(AdminAuthServiceParams{
		UserRepo:      fx.userRepo,
		LoginCodeRepo: fx.loginCodeRepo,
		Hasher:        fx.hasher,
		Notifier:      fx.notifier,
		TokenService:  fx.tokenService,
		Config: &config.Config{
			Auth: &config.AuthConfig{
				LoginCodeExpiry: 30 * time.Minute,
				LoginCodeLength: 6,
			},
		},
		Logger: testLogger(),
	})

	return fx
}

func TestAdminAuthService_IssueLoginCode_Success(t *testing.T) {
	fx := createTestAdminAuthService(t)

	ctx := context.Background()
	email := "ada.obi@example.com"

	fx.userRepo.EXPECT().
		FindByEmail(ctx, email).
		Return(&entity.AdminUser{ID: uuid.New(), Email: email, Role: entity.RolePickupAdmin, IsActive: true}, nil)

	var issuedCode string
	fx.hasher.EXPECT().
		Hash(mock.AnythingOfType("string")).
		Run(func(code string) {
			issuedCode = code
		}).
		Return("hashed-code", nil)

	fx.loginCodeRepo.EXPECT().
		InvalidateByEmailAndPurpose(ctx, email, entity.PurposeAdminLogin).
		Return(nil)

	var stored *entity.OneTimeLoginCode
	fx.loginCodeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.OneTimeLoginCode")).
		Run(func(_ context.Context, record *entity.OneTimeLoginCode) {
			stored = record
		}).
		Return(nil)

	var published *service.LoginCodeEvent
	fx.notifier.EXPECT().
		PublishLoginCode(ctx, mock.AnythingOfType("*service.LoginCodeEvent")).
		Run(func(_ context.Context, event *service.LoginCodeEvent) {
			published = event
		}).
		Return(nil)

	err := fx.service.IssueLoginCode(ctx, email)
	require.NoError(t, err)

	require.Len(t, issuedCode, 6)
	for _, r := range issuedCode {
		assert.True(t, r >= '0' && r <= '9')
	}

	require.NotNil(t, stored)
	assert.Equal(t, email, stored.Email)
	assert.Equal(t, "hashed-code", stored.CodeHash)
	assert.Equal(t, entity.PurposeAdminLogin, stored.Purpose)
	assert.Nil(t, stored.UsedAt)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), stored.ExpiresAt, 5*time.Second)

	require.NotNil(t, published)
	assert.Equal(t, email, published.Email)
	assert.Equal(t, issuedCode, published.Code)
	assert.Equal(t, entity.PurposeAdminLogin.String(), published.Purpose)
	assert.Equal(t, 30, published.ExpiresInMins)
}

func TestAdminAuthService_IssueLoginCode_UnknownEmail(t *testing.T) {
	fx := createTestAdminAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	err := fx.service.IssueLoginCode(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAdminAuthService_IssueLoginCode_RejectsCustomer(t *testing.T) {
	fx := createTestAdminAuthService(t)

	ctx := context.Background()
	email := "shopper@example.com"

	fx.userRepo.EXPECT().
		FindByEmail(ctx, email).
		Return(&entity.AdminUser{ID: uuid.New(), Email: email, Role: entity.RoleCustomer, IsActive: true}, nil)

	err := fx.service.IssueLoginCode(ctx, email)
	assertAppErrorCode(t, err, "INVALID_ROLE")
}

func TestAdminAuthService_IssueLoginCode_DispatchFailure(t *testing.T) {
	fx := createTestAdminAuthService(t)

	ctx := context.Background()
	email := "ada.obi@example.com"

	fx.userRepo.EXPECT().
		FindByEmail(ctx, email).
		Return(&entity.AdminUser{ID: uuid.New(), Email: email, Role: entity.RoleAdmin, IsActive: true}, nil)

	fx.hasher.EXPECT().
		Hash(mock.AnythingOfType("string")).
		Return("hashed-code", nil)

	fx.loginCodeRepo.EXPECT().
		InvalidateByEmailAndPurpose(ctx, email, entity.PurposeAdminLogin).
		Return(nil)

	fx.loginCodeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.OneTimeLoginCode")).
		Return(nil)

	fx.notifier.EXPECT().
		PublishLoginCode(ctx, mock.AnythingOfType("*service.LoginCodeEvent")).
		Return(assert.AnError)

	err := fx.service.IssueLoginCode(ctx, email)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to dispatch login code")
}

func TestAdminAuthService_VerifyLoginCode_Success(t *testing.T) {
	fx := createTestAdminAuthService(t)

	ctx := context.Background()
	email := "ada.obi@example.com"
	userID := uuid.New()
	recordID := uuid.New()

	record := &entity.OneTimeLoginCode{
		ID:        recordID,
		Email:     email,
		CodeHash:  "hashed-code",
		Purpose:   entity.PurposeAdminLogin,
		ExpiresAt: time.Now().Add(10 * time.Minute),
		CreatedAt: time.Now().Add(-time.Minute),
	}

	fx.loginCodeRepo.EXPECT().
		FindActiveByEmailAndPurpose(ctx, email, entity.PurposeAdminLogin).
		Return(record, nil)

	fx.hasher.EXPECT().
		Check("123456", "hashed-code").
		Return(true)

	fx.loginCodeRepo.EXPECT().
		MarkUsed(ctx, recordID).
		Return(nil)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, email).
		Return(&entity.AdminUser{
			ID:        userID,
			FirstName: "Ada",
			LastName:  "Obi",
			Email:     email,
			Role:      entity.RolePickupAdmin,
			IsActive:  true,
		}, nil)

	fx.tokenService.EXPECT().
		GenerateAccessToken(userID, entity.RolePickupAdmin).
		Return("signed-token", nil)

	output, err := fx.service.VerifyLoginCode(ctx, email, "123456")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, userID.String(), output.User.ID)
	assert.Equal(t, entity.RolePickupAdmin.String(), output.User.Role)
}

func TestAdminAuthService_VerifyLoginCode_NoActiveCode(t *testing.T) {
	fx := createTestAdminAuthService(t)

	ctx := context.Background()
	email := "ada.obi@example.com"

	fx.loginCodeRepo.EXPECT().
		FindActiveByEmailAndPurpose(ctx, email, entity.PurposeAdminLogin).
		Return(nil, repository.ErrLoginCodeNotFound)

	output, err := fx.service.VerifyLoginCode(ctx, email, "123456")
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrLoginCodeInvalid)
}

func TestAdminAuthService_VerifyLoginCode_Expired(t *testing.T) {
	fx := createTestAdminAuthService(t)

	ctx := context.Background()
	email := "ada.obi@example.com"

	// Expired codes are rejected before the hash is even checked, and
	// stay unconsumed.
	fx.loginCodeRepo.EXPECT().
		FindActiveByEmailAndPurpose(ctx, email, entity.PurposeAdminLogin).
		Return(&entity.OneTimeLoginCode{
			ID:        uuid.New(),
			Email:     email,
			CodeHash:  "hashed-code",
			Purpose:   entity.PurposeAdminLogin,
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)

	output, err := fx.service.VerifyLoginCode(ctx, email, "123456")
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrLoginCodeExpired)
}

func TestAdminAuthService_VerifyLoginCode_WrongCode(t *testing.T) {
	fx := createTestAdminAuthService(t)

	ctx := context.Background()
	email := "ada.obi@example.com"

	fx.loginCodeRepo.EXPECT().
		FindActiveByEmailAndPurpose(ctx, email, entity.PurposeAdminLogin).
		Return(&entity.OneTimeLoginCode{
			ID:        uuid.New(),
			Email:     email,
			CodeHash:  "hashed-code",
			Purpose:   entity.PurposeAdminLogin,
			ExpiresAt: time.Now().Add(10 * time.Minute),
		}, nil)

	fx.hasher.EXPECT().
		Check("000000", "hashed-code").
		Return(false)

	output, err := fx.service.VerifyLoginCode(ctx, email, "000000")
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrLoginCodeInvalid)
}

func TestAdminAuthService_VerifyLoginCode_ConsumeFailure(t *testing.T) {
	fx := createTestAdminAuthService(t)

	ctx := context.Background()
	email := "ada.obi@example.com"
	recordID := uuid.New()

	fx.loginCodeRepo.EXPECT().
		FindActiveByEmailAndPurpose(ctx, email, entity.PurposeAdminLogin).
		Return(&entity.OneTimeLoginCode{
			ID:        recordID,
			Email:     email,
			CodeHash:  "hashed-code",
			Purpose:   entity.PurposeAdminLogin,
			ExpiresAt: time.Now().Add(10 * time.Minute),
		}, nil)

	fx.hasher.EXPECT().
		Check("123456", "hashed-code").
		Return(true)

	fx.loginCodeRepo.EXPECT().
		MarkUsed(ctx, recordID).
		Return(assert.AnError)

	output, err := fx.service.VerifyLoginCode(ctx, email, "123456")
	assert.Nil(t, output)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to consume login code")
}

func TestGenerateNumericCode_LengthAndCharset(t *testing.T) {
	code, err := generateNumericCode(8)
	require.NoError(t, err)
	require.Len(t, code, 8)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}
}
