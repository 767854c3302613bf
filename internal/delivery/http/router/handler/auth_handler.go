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

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AdminAuthUsecase
	Logger *slog.Logger
}

// AuthHandler exposes the passwordless admin login flow
type AuthHandler struct {
	authUC usecase.AdminAuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// IssueLoginCodeRequest represents the request body for requesting a login code
type IssueLoginCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyLoginCodeRequest represents the request body for exchanging a login code
type VerifyLoginCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

// IssueLoginCode handles the one-time login code request
func (h *AuthHandler) IssueLoginCode(c echo.Context) error {
	var req IssueLoginCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login code request")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.authUC.IssueLoginCode(c.Request().Context(), req.Email); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Login code sent"}, "Login code sent")
}

// VerifyLoginCode handles the code-for-token exchange
func (h *AuthHandler) VerifyLoginCode(c echo.Context) error {
	var req VerifyLoginCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.authUC.VerifyLoginCode(c.Request().Context(), req.Email, req.Code)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// handleAppError handles application errors
func (h *AuthHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service healthy")
}
