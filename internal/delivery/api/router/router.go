// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"booknow/config"
	"booknow/internal/delivery/api/middleware"
	"booknow/internal/delivery/api/router/handler"
	"booknow/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	ReferralHandler    *handler.ReferralHandler
	StatsHandler       *handler.StatsHandler
	BusinessHandler    *handler.BusinessHandler
	FollowHandler      *handler.FollowHandler
	DiagnosticsHandler *handler.DiagnosticsHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	referralHandler    *handler.ReferralHandler
	statsHandler       *handler.StatsHandler
	businessHandler    *handler.BusinessHandler
	followHandler      *handler.FollowHandler
	diagnosticsHandler *handler.DiagnosticsHandler
	authMiddleware     *middleware.AuthMiddleware
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		referralHandler:    params.ReferralHandler,
		statsHandler:       params.StatsHandler,
		businessHandler:    params.BusinessHandler,
		followHandler:      params.FollowHandler,
		diagnosticsHandler: params.DiagnosticsHandler,
		authMiddleware:     params.AuthMiddleware,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Public so the sign-up form can check a code before submitting.
	e.GET("/referral-codes/:code", r.authHandler.ValidateReferralCode)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	apiV1.GET("/me", r.authHandler.GetProfile)
	apiV1.GET("/me/stats", r.statsHandler.GetStats)
	apiV1.GET("/me/achievements", r.statsHandler.ListAchievements)

	referralGroup := apiV1.Group("/referrals")
	{
		referralGroup.GET("/dashboard", r.referralHandler.GetDashboard)
		referralGroup.GET("/qr", r.referralHandler.GetQRCode)
		referralGroup.GET("/activities", r.referralHandler.ListActivities)
	}

	businessGroup := apiV1.Group("/business")
	businessGroup.Use(r.authMiddleware.RequireRole(entity.RoleBusiness))
	{
		businessGroup.GET("/subscription", r.businessHandler.GetSubscription)
	}

	apiV1.GET("/businesses", r.followHandler.SearchBusinesses)

	usersGroup := apiV1.Group("/users/:id")
	{
		usersGroup.GET("/follow", r.followHandler.IsFollowing)
		usersGroup.POST("/follow", r.followHandler.Follow)
		usersGroup.DELETE("/follow", r.followHandler.Unfollow)
		usersGroup.GET("/followers", r.followHandler.ListFollowers)
		usersGroup.GET("/following", r.followHandler.ListFollowing)
	}
}

// RegisterDiagnosticsRoutes exposes internals only when configured.
func (r *router) RegisterDiagnosticsRoutes(e *echo.Echo) {
	if r.config.Diagnostics == nil || !r.config.Diagnostics.Enabled {
		return
	}

	diagnosticsGroup := e.Group("/diagnostics")
	diagnosticsGroup.Use(r.authMiddleware.Authenticate)
	diagnosticsGroup.GET("", r.diagnosticsHandler.GetDiagnostics)
}
