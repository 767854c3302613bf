// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"depot/internal/delivery/http/middleware"
	"depot/internal/delivery/http/router/handler"
	"depot/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler      *handler.LocationHandler
	LocationAdminHandler *handler.LocationAdminHandler
	AuthHandler          *handler.AuthHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler      *handler.LocationHandler
	locationAdminHandler *handler.LocationAdminHandler
	authHandler          *handler.AuthHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler:      params.LocationHandler,
		locationAdminHandler: params.LocationAdminHandler,
		authHandler:          params.AuthHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Passwordless login flow, no authentication required
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login-code", r.authHandler.IssueLoginCode)
		authGroup.POST("/login", r.authHandler.VerifyLoginCode)
	}

	// Public courier-facing reads
	locationGroup := e.Group("/locations")
	{
		locationGroup.GET("", r.locationHandler.ListLocations)
		locationGroup.GET("/nearest", r.locationHandler.FindNearest)
		locationGroup.GET("/:id", r.locationHandler.GetLocation)
		locationGroup.GET("/:id/qrcode", r.locationHandler.GetLocationQR)
	}

	// Location store writes and the admin binding workflow require a
	// logged-in super-admin
	adminGroup := e.Group("/admin/locations")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("", r.locationHandler.CreateLocation)
		adminGroup.GET("/nearest", r.locationHandler.FindNearestAssignable)
		adminGroup.PATCH("/:id", r.locationHandler.UpdateLocation)
		adminGroup.DELETE("/:id", r.locationHandler.DeleteLocation)

		adminGroup.POST("/with-new-admin", r.locationAdminHandler.CreateWithNewAdmin)
		adminGroup.POST("/for-existing-admin", r.locationAdminHandler.CreateForExistingAdmin)
		adminGroup.POST("/:id/assign", r.locationAdminHandler.AssignLocation)
	}
}
