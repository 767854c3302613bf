package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"depot/config"
	deliverycontext "depot/internal/delivery/context"
	"depot/internal/domain/entity"
	domainerrors "depot/internal/domain/errors"
	"depot/internal/domain/repository"
	"depot/internal/domain/service"
	"depot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminAuthService implements the AdminAuthUsecase interface. It is the
// credential issuer: it mints, stores and dispatches one-time login codes and
// exchanges them for access tokens.
type adminAuthService struct {
	userRepo      repository.UserRepository
	loginCodeRepo repository.LoginCodeRepository
	hasher        service.CodeHasher
	notifier      service.LoginCodeNotifier
	tokenService  service.TokenService
	codeExpiry    time.Duration
	codeLength    int
	logger        *slog.Logger
}

// AdminAuthServiceParams holds dependencies for the auth service, injected by Fx.
type AdminAuthServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	LoginCodeRepo repository.LoginCodeRepository
	Hasher        service.CodeHasher
	Notifier      service.LoginCodeNotifier
	TokenService  service.TokenService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAdminAuthService is the constructor for adminAuthService.
func NewAdminAuthService(params AdminAuthServiceParams) usecase.AdminAuthUsecase {
	codeExpiry := 30 * time.Minute
	codeLength := 6
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.LoginCodeExpiry > 0 {
			codeExpiry = params.Config.Auth.LoginCodeExpiry
		}
		if params.Config.Auth.LoginCodeLength > 0 {
			codeLength = params.Config.Auth.LoginCodeLength
		}
	}

	return &adminAuthService{
		userRepo:      params.UserRepo,
		loginCodeRepo: params.LoginCodeRepo,
		hasher:        params.Hasher,
		notifier:      params.Notifier,
		tokenService:  params.TokenService,
		codeExpiry:    codeExpiry,
		codeLength:    codeLength,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminAuthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueLoginCode mints a fresh numeric code for a known admin email,
// invalidating all outstanding codes for the same (email, purpose) pair
// before the new one is stored and dispatched.
func (srv *adminAuthService) IssueLoginCode(ctx context.Context, email string) error {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user by email")
	}

	if user.Role != entity.RoleAdmin && user.Role != entity.RolePickupAdmin {
		return domainerrors.ErrInvalidRole.WithDetails("only admin accounts can request a login code")
	}

	code, err := generateNumericCode(srv.codeLength)
	if err != nil {
		return errors.Wrap(err, "failed to generate login code")
	}

	codeHash, err := srv.hasher.Hash(code)
	if err != nil {
		return errors.Wrap(err, "failed to hash login code")
	}

	if err := srv.loginCodeRepo.InvalidateByEmailAndPurpose(ctx, email, entity.PurposeAdminLogin); err != nil {
		return errors.Wrap(err, "failed to invalidate previous login codes")
	}

	now := time.Now()
	record := &entity.OneTimeLoginCode{
		ID:        uuid.New(),
		Email:     email,
		CodeHash:  codeHash,
		Purpose:   entity.PurposeAdminLogin,
		ExpiresAt: now.Add(srv.codeExpiry),
		CreatedAt: now,
	}
	if err := srv.loginCodeRepo.Create(ctx, record); err != nil {
		return errors.Wrap(err, "failed to store login code")
	}

	event := service.NewLoginCodeEvent(email, code, entity.PurposeAdminLogin.String(), srv.codeExpiry, now)
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := srv.notifier.PublishLoginCode(ctx, event); err != nil {
		return errors.Wrap(err, "failed to dispatch login code")
	}

	srv.log(ctx).Info("Login code issued",
		slog.String("email", email),
		slog.Time("expiresAt", record.ExpiresAt),
	)

	return nil
}

// VerifyLoginCode exchanges (email, code) for an access token. The code is
// consumed on success and can never be replayed.
func (srv *adminAuthService) VerifyLoginCode(ctx context.Context, email, code string) (*usecase.LoginOutput, error) {
	record, err := srv.loginCodeRepo.FindActiveByEmailAndPurpose(ctx, email, entity.PurposeAdminLogin)
	if err != nil {
		if errors.Is(err, repository.ErrLoginCodeNotFound) {
			return nil, domainerrors.ErrLoginCodeInvalid
		}

		return nil, errors.Wrap(err, "failed to look up login code")
	}

	if record.IsExpired(time.Now()) {
		return nil, domainerrors.ErrLoginCodeExpired
	}

	if !srv.hasher.Check(code, record.CodeHash) {
		return nil, domainerrors.ErrLoginCodeInvalid
	}

	if err := srv.loginCodeRepo.MarkUsed(ctx, record.ID); err != nil {
		return nil, errors.Wrap(err, "failed to consume login code")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("Admin logged in with one-time code", slog.String("userID", user.ID.String()))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		User:        toAdminSummary(user),
	}, nil
}

// generateNumericCode returns a fixed-length numeric string drawn from
// crypto/rand. Leading zeros are preserved.
func generateNumericCode(length int) (string, error) {
	const digits = "0123456789"

	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		builder.WriteByte(digits[n.Int64()])
	}

	return builder.String(), nil
}
