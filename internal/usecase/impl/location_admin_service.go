package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "depot/internal/delivery/context"
	"depot/internal/domain/entity"
	domainerrors "depot/internal/domain/errors"
	"depot/internal/domain/repository"
	"depot/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// locationAdminService implements the LocationAdminUsecase interface. It owns
// the 1:1 location-to-admin binding invariant and the role promotion rules.
type locationAdminService struct {
	txManager    repository.TransactionManager
	locationRepo repository.LocationRepository
	userRepo     repository.UserRepository
	regionRepo   repository.RegionRepository
	authUC       usecase.AdminAuthUsecase
	logger       *slog.Logger
}

// LocationAdminServiceParams holds dependencies for the workflow service, injected by Fx.
type LocationAdminServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	LocationRepo repository.LocationRepository
	UserRepo     repository.UserRepository
	RegionRepo   repository.RegionRepository
	AuthUC       usecase.AdminAuthUsecase
	Logger       *slog.Logger
}

// NewLocationAdminService is the constructor for locationAdminService.
func NewLocationAdminService(params LocationAdminServiceParams) usecase.LocationAdminUsecase {
	return &locationAdminService{
		txManager:    params.TxManager,
		locationRepo: params.LocationRepo,
		userRepo:     params.UserRepo,
		regionRepo:   params.RegionRepo,
		authUC:       params.AuthUC,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *locationAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateWithNewAdmin creates a pickup location together with its first-time
// admin account, then issues and dispatches a one-time login code.
//
// The location and user writes share one transaction. Credential issuance
// runs after commit and is not compensated: if it fails, the location and
// admin exist but no code has been delivered. The error is propagated so the
// caller sees the partial state; the admin can recover through the login-code
// re-request endpoint.
func (srv *locationAdminService) CreateWithNewAdmin(ctx context.Context, input *usecase.CreateWithNewAdminInput) (*usecase.LocationWithAdminOutput, error) {
	if input.Admin.Email == "" || input.Admin.FirstName == "" || input.Admin.LastName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("admin first name, last name and email are required")
	}

	// Reject up front so no location row is written for a taken email.
	if _, err := srv.userRepo.FindByEmail(ctx, input.Admin.Email); err == nil {
		return nil, domainerrors.ErrAdminEmailInUse
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up admin email")
	}

	location, err := buildLocationFromInput(&input.Location)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	admin := &entity.AdminUser{
		ID:               uuid.New(),
		FirstName:        input.Admin.FirstName,
		LastName:         input.Admin.LastName,
		Email:            input.Admin.Email,
		Phone:            input.Admin.Phone,
		Role:             entity.RolePickupAdmin,
		PickupLocationID: &location.ID,
		EmailVerified:    true,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewLocationRepository().Create(ctx, location); err != nil {
			return errors.Wrap(err, "failed to create pickup location")
		}

		if err := repoFactory.NewUserRepository().Create(ctx, admin); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return domainerrors.ErrAdminEmailInUse
			}

			return errors.Wrap(err, "failed to create admin user")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Pickup location created with new admin",
		slog.String("locationID", location.ID.String()),
		slog.String("adminID", admin.ID.String()),
	)

	if err := srv.authUC.IssueLoginCode(ctx, admin.Email); err != nil {
		srv.log(ctx).Error("Login code issuance failed after admin creation",
			slog.String("adminID", admin.ID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "location and admin created but login code issuance failed")
	}

	return &usecase.LocationWithAdminOutput{
		Location: toLocationOutput(location, srv.resolveRegionName(ctx, location.RegionID)),
		Admin:    toAdminSummary(admin),
	}, nil
}

// CreateForExistingAdmin creates a pickup location and attaches it to an
// existing super-admin.
func (srv *locationAdminService) CreateForExistingAdmin(ctx context.Context, userID string, locationInput *usecase.CreateLocationInput) (*usecase.LocationWithAdminOutput, error) {
	adminID, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	admin, err := srv.userRepo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	// Only super-admins may claim an additional depot this way.
	if admin.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrInvalidRole.WithDetails("only ADMIN users can be attached to a new location")
	}
	if admin.ManagesLocation() {
		return nil, domainerrors.ErrAdminHasLocation
	}

	location, err := buildLocationFromInput(locationInput)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewLocationRepository().Create(ctx, location); err != nil {
			return errors.Wrap(err, "failed to create pickup location")
		}

		users := repoFactory.NewUserRepository()

		// Re-read inside the transaction: the user may have vanished between
		// the initial check and this write. Reported distinctly.
		current, err := users.FindByID(ctx, adminID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserVanished
			}

			return errors.Wrap(err, "failed to re-read user")
		}
		if current.ManagesLocation() {
			return domainerrors.ErrAdminHasLocation
		}

		current.PickupLocationID = &location.ID
		current.UpdatedAt = time.Now()
		if err := users.Update(ctx, current); err != nil {
			switch {
			case errors.Is(err, repository.ErrUserNotFound):
				return domainerrors.ErrUserVanished
			case errors.Is(err, repository.ErrLocationTaken):
				return domainerrors.ErrLocationAlreadyAssigned
			}

			return errors.Wrap(err, "failed to attach location to user")
		}

		admin = current

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Pickup location attached to existing admin",
		slog.String("locationID", location.ID.String()),
		slog.String("adminID", admin.ID.String()),
	)

	return &usecase.LocationWithAdminOutput{
		Location: toLocationOutput(location, srv.resolveRegionName(ctx, location.RegionID)),
		Admin:    toAdminSummary(admin),
	}, nil
}

// AssignLocation binds an existing location to an existing user. Re-assigning
// a location to its current holder succeeds; assigning a location already
// held by someone else conflicts. The role transition and the location
// reference land in a single update.
func (srv *locationAdminService) AssignLocation(ctx context.Context, locationID, userID string) (*usecase.LocationWithAdminOutput, error) {
	locID, err := parseLocationID(locationID)
	if err != nil {
		return nil, err
	}
	usrID, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	location, err := srv.locationRepo.FindByID(ctx, locID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find pickup location")
	}

	user, err := srv.userRepo.FindByID(ctx, usrID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	holder, err := srv.userRepo.FindByPickupLocationID(ctx, locID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up current location holder")
	}
	if holder != nil && holder.ID != user.ID {
		return nil, domainerrors.ErrLocationAlreadyAssigned
	}

	user.PickupLocationID = &locID
	user.Role = entity.RoleAfterAssignment(user.Role)
	user.UpdatedAt = time.Now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, domainerrors.ErrUserVanished
		case errors.Is(err, repository.ErrLocationTaken):
			// The partial unique index closed the check-then-act race.
			return nil, domainerrors.ErrLocationAlreadyAssigned
		case errors.Is(err, repository.ErrLocationNotFound):
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to assign location to user")
	}

	srv.log(ctx).Info("Pickup location assigned",
		slog.String("locationID", locID.String()),
		slog.String("userID", user.ID.String()),
		slog.String("role", user.Role.String()),
	)

	return &usecase.LocationWithAdminOutput{
		Location: toLocationOutput(location, srv.resolveRegionName(ctx, location.RegionID)),
		Admin:    toAdminSummary(user),
	}, nil
}

// resolveRegionName looks up a region's name for response formatting.
func (srv *locationAdminService) resolveRegionName(ctx context.Context, regionID uuid.UUID) string {
	region, err := srv.regionRepo.FindByID(ctx, regionID)
	if err != nil {
		return ""
	}

	return region.Name
}

// buildLocationFromInput validates workflow location fields and assembles the entity.
func buildLocationFromInput(input *usecase.CreateLocationInput) (*entity.PickupLocation, error) {
	if input.Name == "" || input.Address == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and address are required")
	}
	if err := validateCoordinate(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	regionID, err := parseRegionID(input.RegionID)
	if err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := time.Now()

	return &entity.PickupLocation{
		ID:        uuid.New(),
		Name:      input.Name,
		Address:   input.Address,
		Point:     orb.Point{input.Longitude, input.Latitude},
		RegionID:  regionID,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
