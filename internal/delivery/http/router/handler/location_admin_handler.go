package handler

import (
	"log/slog"
	"net/http"

	"depot/internal/delivery/http/response"
	domainerrors "depot/internal/domain/errors"
	"depot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationAdminHandlerParams holds dependencies for LocationAdminHandler, injected by Fx.
type LocationAdminHandlerParams struct {
	fx.In

	LocationAdminUC usecase.LocationAdminUsecase
	Logger          *slog.Logger
}

// LocationAdminHandler exposes the location-to-admin binding workflow
type LocationAdminHandler struct {
	locationAdminUC usecase.LocationAdminUsecase
	logger          *slog.Logger
}

// NewLocationAdminHandler is the constructor for LocationAdminHandler
func NewLocationAdminHandler(params LocationAdminHandlerParams) *LocationAdminHandler {
	return &LocationAdminHandler{
		locationAdminUC: params.LocationAdminUC,
		logger:          params.Logger,
	}
}

// NewAdminRequest represents the identity fields for a first-time admin
type NewAdminRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
}

// CreateWithNewAdminRequest couples a new location with its first-time admin
type CreateWithNewAdminRequest struct {
	Location CreateLocationRequest `json:"location" validate:"required"`
	Admin    NewAdminRequest       `json:"admin" validate:"required"`
}

// CreateForExistingAdminRequest attaches a new location to an existing super-admin
type CreateForExistingAdminRequest struct {
	UserID   string                `json:"user_id" validate:"required"`
	Location CreateLocationRequest `json:"location" validate:"required"`
}

// AssignLocationRequest binds an existing location to an existing user
type AssignLocationRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// CreateWithNewAdmin handles creating a location together with a brand-new admin account
func (h *LocationAdminHandler) CreateWithNewAdmin(c echo.Context) error {
	var req CreateWithNewAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location admin input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateWithNewAdminInput{
		Location: usecase.CreateLocationInput{
			Name:      req.Location.Name,
			Address:   req.Location.Address,
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
			RegionID:  req.Location.RegionID,
			IsActive:  req.Location.IsActive,
		},
		Admin: usecase.NewAdminInput{
			FirstName: req.Admin.FirstName,
			LastName:  req.Admin.LastName,
			Email:     req.Admin.Email,
			Phone:     req.Admin.Phone,
		},
	}

	output, err := h.locationAdminUC.CreateWithNewAdmin(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output, "Pickup location and admin created successfully")
}

// CreateForExistingAdmin handles creating a location attached to an existing super-admin
func (h *LocationAdminHandler) CreateForExistingAdmin(c echo.Context) error {
	var req CreateForExistingAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location admin input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateLocationInput{
		Name:      req.Location.Name,
		Address:   req.Location.Address,
		Latitude:  req.Location.Latitude,
		Longitude: req.Location.Longitude,
		RegionID:  req.Location.RegionID,
		IsActive:  req.Location.IsActive,
	}

	output, err := h.locationAdminUC.CreateForExistingAdmin(c.Request().Context(), req.UserID, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output, "Pickup location created for admin successfully")
}

// AssignLocation handles binding an existing location to an existing user
func (h *LocationAdminHandler) AssignLocation(c echo.Context) error {
	var req AssignLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.locationAdminUC.AssignLocation(c.Request().Context(), c.Param("id"), req.UserID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Pickup location assigned successfully")
}

// handleAppError handles application errors
func (h *LocationAdminHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
