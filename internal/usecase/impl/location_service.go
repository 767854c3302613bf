package impl

import (
	"context"
	"log/slog"
	"time"

	"depot/config"
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

// locationService implements the LocationUsecase interface.
type locationService struct {
	locationRepo repository.LocationRepository
	regionRepo   repository.RegionRepository
	cfg          *config.Config
	logger       *slog.Logger
}

// LocationServiceParams holds dependencies for the location service, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	RegionRepo   repository.RegionRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		locationRepo: params.LocationRepo,
		regionRepo:   params.RegionRepo,
		cfg:          params.Config,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateLocation creates a new pickup location.
func (srv *locationService) CreateLocation(ctx context.Context, input *usecase.CreateLocationInput) (*usecase.LocationOutput, error) {
	location, err := buildLocationFromInput(input)
	if err != nil {
		return nil, err
	}

	if err := srv.locationRepo.Create(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to create pickup location")
	}

	srv.log(ctx).Info("Pickup location created",
		slog.String("locationID", location.ID.String()),
		slog.String("name", location.Name),
	)

	return toLocationOutput(location, srv.resolveRegionName(ctx, location.RegionID)), nil
}

// ListLocations retrieves all locations ordered by name with region names resolved.
func (srv *locationService) ListLocations(ctx context.Context) ([]*usecase.LocationOutput, error) {
	locations, err := srv.locationRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pickup locations")
	}

	regionIDs := make([]uuid.UUID, 0, len(locations))
	seen := make(map[uuid.UUID]struct{}, len(locations))
	for _, location := range locations {
		if _, ok := seen[location.RegionID]; ok {
			continue
		}
		seen[location.RegionID] = struct{}{}
		regionIDs = append(regionIDs, location.RegionID)
	}

	names, err := srv.regionRepo.FindNamesByIDs(ctx, regionIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve region names")
	}

	outputs := make([]*usecase.LocationOutput, 0, len(locations))
	for _, location := range locations {
		outputs = append(outputs, toLocationOutput(location, names[location.RegionID]))
	}

	return outputs, nil
}

// GetLocation retrieves a single location by id.
func (srv *locationService) GetLocation(ctx context.Context, id string) (*usecase.LocationOutput, error) {
	locationID, err := parseLocationID(id)
	if err != nil {
		return nil, err
	}

	location, err := srv.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find pickup location")
	}

	return toLocationOutput(location, srv.resolveRegionName(ctx, location.RegionID)), nil
}

// UpdateLocation applies only the fields present in the partial input.
func (srv *locationService) UpdateLocation(ctx context.Context, id string, input *usecase.UpdateLocationInput) (*usecase.LocationOutput, error) {
	locationID, err := parseLocationID(id)
	if err != nil {
		return nil, err
	}

	// Latitude and longitude travel together; a lone coordinate would
	// silently shear the point.
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("latitude and longitude must be updated together")
	}

	location, err := srv.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find pickup location")
	}

	if err := srv.applyLocationUpdates(location, input); err != nil {
		return nil, err
	}

	if err := srv.locationRepo.Update(ctx, location); err != nil {
		// The existence read above succeeded, so a write reporting no
		// effect is a lost update rather than a plain not-found.
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrUpdateFailed
		}

		return nil, errors.Wrap(err, "failed to update pickup location")
	}

	return toLocationOutput(location, srv.resolveRegionName(ctx, location.RegionID)), nil
}

// applyLocationUpdates applies the partial input to a location entity.
func (srv *locationService) applyLocationUpdates(location *entity.PickupLocation, input *usecase.UpdateLocationInput) error {
	if input.Name != nil {
		if *input.Name == "" {
			return domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
		}
		location.Name = *input.Name
	}
	if input.Address != nil {
		if *input.Address == "" {
			return domainerrors.ErrValidationFailed.WithDetails("address must not be empty")
		}
		location.Address = *input.Address
	}
	if input.Latitude != nil && input.Longitude != nil {
		if err := validateCoordinate(*input.Latitude, *input.Longitude); err != nil {
			return err
		}
		location.Point = orb.Point{*input.Longitude, *input.Latitude}
	}
	if input.RegionID != nil {
		regionID, err := parseRegionID(*input.RegionID)
		if err != nil {
			return err
		}
		location.RegionID = regionID
	}
	if input.IsActive != nil {
		location.IsActive = *input.IsActive
	}
	location.UpdatedAt = time.Now()

	return nil
}

// DeleteLocation physically removes a location. A second delete for the same
// id reports not-found rather than crashing.
func (srv *locationService) DeleteLocation(ctx context.Context, id string) error {
	locationID, err := parseLocationID(id)
	if err != nil {
		return err
	}

	if err := srv.locationRepo.Delete(ctx, locationID); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return domainerrors.ErrLocationNotFound
		}

		return errors.Wrap(err, "failed to delete pickup location")
	}

	srv.log(ctx).Info("Pickup location deleted", slog.String("locationID", locationID.String()))

	return nil
}

// FindNearest returns the nearest active location within the store's default
// search radius.
func (srv *locationService) FindNearest(ctx context.Context, latitude, longitude float64) (*usecase.LocationOutput, error) {
	return srv.findNearestWithin(ctx, latitude, longitude, srv.cfg.Pickup.SearchRadiusMeters)
}

// FindNearestAssignable returns the nearest active location within the
// tighter assignment bound. Used by the admin surface when picking a depot
// to bind to a user near a given position.
func (srv *locationService) FindNearestAssignable(ctx context.Context, latitude, longitude float64) (*usecase.LocationOutput, error) {
	return srv.findNearestWithin(ctx, latitude, longitude, srv.cfg.Pickup.AssignRadiusMeters)
}

func (srv *locationService) findNearestWithin(ctx context.Context, latitude, longitude, radiusMeters float64) (*usecase.LocationOutput, error) {
	if err := validateCoordinate(latitude, longitude); err != nil {
		return nil, err
	}

	location, err := srv.locationRepo.FindNearest(ctx, orb.Point{longitude, latitude}, radiusMeters)
	if err != nil {
		if errors.Is(err, repository.ErrNoLocationInRange) {
			return nil, domainerrors.ErrNoNearbyLocation
		}

		return nil, errors.Wrap(err, "failed to find nearest pickup location")
	}

	return toLocationOutput(location, srv.resolveRegionName(ctx, location.RegionID)), nil
}

// resolveRegionName looks up a region's name for response formatting. An
// unknown region yields an empty name, not an error: region existence is not
// verified at location creation.
func (srv *locationService) resolveRegionName(ctx context.Context, regionID uuid.UUID) string {
	region, err := srv.regionRepo.FindByID(ctx, regionID)
	if err != nil {
		if !errors.Is(err, repository.ErrRegionNotFound) {
			srv.log(ctx).Warn("Failed to resolve region name",
				slog.String("regionID", regionID.String()),
				slog.Any("error", err),
			)
		}

		return ""
	}

	return region.Name
}

// validateCoordinate checks latitude/longitude bounds.
func validateCoordinate(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return domainerrors.ErrValidationFailed.WithDetails("latitude must be within [-90, 90]")
	}
	if longitude < -180 || longitude > 180 {
		return domainerrors.ErrValidationFailed.WithDetails("longitude must be within [-180, 180]")
	}

	return nil
}
