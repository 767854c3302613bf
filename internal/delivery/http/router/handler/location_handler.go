// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"depot/internal/delivery/http/response"
	domainerrors "depot/internal/domain/errors"
	"depot/internal/domain/service"
	"depot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	QRCodeSvc  service.QRCodeService
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for pickup-location handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	qrcodeSvc  service.QRCodeService
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		qrcodeSvc:  params.QRCodeSvc,
		logger:     params.Logger,
	}
}

// CreateLocationRequest represents the request body for creating a location
type CreateLocationRequest struct {
	Name      string  `json:"name" validate:"required"`
	Address   string  `json:"address" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	RegionID  string  `json:"region_id" validate:"required"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// UpdateLocationRequest represents the request body for updating a location
type UpdateLocationRequest struct {
	Name      *string  `json:"name,omitempty"`
	Address   *string  `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	RegionID  *string  `json:"region_id,omitempty"`
	IsActive  *bool    `json:"is_active,omitempty"`
}

// ListLocations handles retrieving all pickup locations
func (h *LocationHandler) ListLocations(c echo.Context) error {
	locations, err := h.locationUC.ListLocations(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations, "Pickup locations retrieved successfully")
}

// GetLocation handles retrieving a single pickup location
func (h *LocationHandler) GetLocation(c echo.Context) error {
	location, err := h.locationUC.GetLocation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location, "Pickup location retrieved successfully")
}

// CreateLocation handles creating a new pickup location
func (h *LocationHandler) CreateLocation(c echo.Context) error {
	var req CreateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateLocationInput{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		RegionID:  req.RegionID,
		IsActive:  req.IsActive,
	}

	location, err := h.locationUC.CreateLocation(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, location, "Pickup location created successfully")
}

// UpdateLocation handles a partial update of a pickup location
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateLocationInput{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		RegionID:  req.RegionID,
		IsActive:  req.IsActive,
	}

	location, err := h.locationUC.UpdateLocation(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location, "Pickup location updated successfully")
}

// DeleteLocation handles deleting a pickup location
func (h *LocationHandler) DeleteLocation(c echo.Context) error {
	if err := h.locationUC.DeleteLocation(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Pickup location deleted successfully"}, "Pickup location deleted successfully")
}

// FindNearest handles the nearest-location query for a courier position
func (h *LocationHandler) FindNearest(c echo.Context) error {
	latitude, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "latitude must be a number")
	}

	longitude, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "longitude must be a number")
	}

	location, err := h.locationUC.FindNearest(c.Request().Context(), latitude, longitude)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location, "Nearest pickup location retrieved successfully")
}

// FindNearestAssignable handles the nearest-location query the admin
// dashboard uses when binding a depot to a user, under the tighter
// assignment bound
func (h *LocationHandler) FindNearestAssignable(c echo.Context) error {
	latitude, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "latitude must be a number")
	}

	longitude, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "longitude must be a number")
	}

	location, err := h.locationUC.FindNearestAssignable(c.Request().Context(), latitude, longitude)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location, "Nearest assignable pickup location retrieved successfully")
}

// GetLocationQR renders the signage QR code PNG for a pickup location
func (h *LocationHandler) GetLocationQR(c echo.Context) error {
	// Resolve through the usecase first so missing locations 404 instead of
	// producing a QR for a dangling id.
	location, err := h.locationUC.GetLocation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleAppError(c, err)
	}

	locationID, err := uuid.Parse(location.ID)
	if err != nil {
		return response.InternalServerError(c, "INTERNAL_ERROR", "Invalid location identifier")
	}

	pngBytes, err := h.qrcodeSvc.GenerateLocationQR(locationID)
	if err != nil {
		h.logger.Error("Failed to generate location QR code",
			slog.String("location_id", location.ID),
			slog.String("error", err.Error()),
		)

		return response.InternalServerError(c, "INTERNAL_ERROR", "Failed to generate QR code")
	}

	return c.Blob(http.StatusOK, "image/png", pngBytes)
}

// handleAppError handles application errors
func (h *LocationHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
