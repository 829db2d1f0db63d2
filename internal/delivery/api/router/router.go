// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"firelink/config"
	"firelink/internal/delivery/api/middleware"
	"firelink/internal/delivery/api/router/handler"
	"firelink/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	LinkHandler       *handler.LinkHandler
	AccountHandler    *handler.AccountHandler
	SessionMiddleware *middleware.SessionMiddleware
	RateLimiter       *middleware.RateLimiter
	Registry          *prometheus.Registry `optional:"true"`
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	linkHandler       *handler.LinkHandler
	accountHandler    *handler.AccountHandler
	sessionMiddleware *middleware.SessionMiddleware
	rateLimiter       *middleware.RateLimiter
	registry          *prometheus.Registry
	config            *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		linkHandler:       params.LinkHandler,
		accountHandler:    params.AccountHandler,
		sessionMiddleware: params.SessionMiddleware,
		rateLimiter:       params.RateLimiter,
		registry:          params.Registry,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth", r.rateLimiter.Limit, r.sessionMiddleware.Attach)
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/signin", r.authHandler.SignIn)
		authGroup.POST("/signout", r.authHandler.SignOut)
		authGroup.GET("/state", r.authHandler.State)
		authGroup.GET("/notices", r.authHandler.Notices)
		authGroup.POST("/password-reset", r.authHandler.PasswordReset)

		authGroup.GET("/callback", r.linkHandler.Callback)
		authGroup.GET("/link/prompt", r.linkHandler.CurrentPrompt)
		authGroup.POST("/link/prompt", r.linkHandler.AnswerPrompt)
		authGroup.DELETE("/link/prompt", r.linkHandler.CancelPrompt)
	}

	accountGroup := e.Group("/account", r.rateLimiter.Limit, r.sessionMiddleware.Attach)
	{
		accountGroup.POST("/links", r.accountHandler.AddLink)
		accountGroup.DELETE("/links/:provider", r.accountHandler.RemoveLink)
		accountGroup.PUT("/email", r.accountHandler.UpdateEmail)
		accountGroup.PUT("/profile", r.accountHandler.UpdateProfile)
		accountGroup.PUT("/password", r.accountHandler.UpdatePassword)
		accountGroup.DELETE("", r.accountHandler.Withdraw)
	}
}

// RegisterMetricsRoute exposes the Prometheus registry when metrics are enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.registry == nil || r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(metrics.Handler(r.registry)))
}
