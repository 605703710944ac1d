// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"padifood/internal/delivery/http/middleware"
	"padifood/internal/delivery/http/router/handler"
	deliverymiddleware "padifood/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ClientHandler       *handler.ClientHandler
	VendorHandler       *handler.VendorHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *deliverymiddleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	clientHandler       *handler.ClientHandler
	vendorHandler       *handler.VendorHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *deliverymiddleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		clientHandler:       params.ClientHandler,
		vendorHandler:       params.VendorHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Token landing page; reads the URL fragment client-side.
	e.GET("/api-docs/oauth2-redirect", r.authHandler.OAuth2Redirect)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.GET("/start-oauth", r.authHandler.StartOAuth)
		authGroup.GET("/github/callback", r.authHandler.Callback)
		authGroup.GET("/github/failure", r.authHandler.Failure)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// API routes; profile sits behind the auth gate, CRUD is open like the
	// rest of the catalog.
	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/profile", r.authHandler.GetProfile, r.authMiddleware.Authenticate)

		apiGroup.GET("/clients", r.clientHandler.List)
		apiGroup.POST("/clients", r.clientHandler.Create)
		apiGroup.GET("/clients/:id", r.clientHandler.Get)
		apiGroup.PUT("/clients/:id", r.clientHandler.Update)
		apiGroup.DELETE("/clients/:id", r.clientHandler.Delete)

		apiGroup.GET("/vendors", r.vendorHandler.List)
		apiGroup.POST("/vendors", r.vendorHandler.Create)
		apiGroup.GET("/vendors/:id", r.vendorHandler.Get)
		apiGroup.PUT("/vendors/:id", r.vendorHandler.Update)
		apiGroup.DELETE("/vendors/:id", r.vendorHandler.Delete)
	}
}
