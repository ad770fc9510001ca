// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gestor/internal/delivery/api/middleware"
	"gestor/internal/delivery/api/router/handler"

	"gestor/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	PatternHandler *handler.PatternHandler
	AccountHandler *handler.AccountHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
	Gatherer       prometheus.Gatherer `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	patternHandler *handler.PatternHandler
	accountHandler *handler.AccountHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	gatherer       prometheus.Gatherer
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		patternHandler: params.PatternHandler,
		accountHandler: params.AccountHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
		gatherer:       params.Gatherer,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)
	if r.gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.gatherer)))
	}

	requireJSON := middleware.RequireJSON
	authenticate := r.authMiddleware.Authenticate

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login, requireJSON)
		authGroup.GET("/login", r.authHandler.Refresh)
		authGroup.GET("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/register", r.authHandler.Register, requireJSON)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword, requireJSON)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword, requireJSON)
		authGroup.GET("/me", r.accountHandler.Me, authenticate)
		authGroup.POST("/pattern", r.patternHandler.SetPattern, authenticate, requireJSON)
		authGroup.POST("/pattern/login", r.patternHandler.Login, requireJSON)
	}
}
