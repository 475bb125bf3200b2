// Package router contains routing for the HTTP delivery.
package router

import (
	"guardian/internal/delivery/api/middleware"
	"guardian/internal/delivery/api/router/handler"
	"guardian/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceTokenHandler *handler.DeviceTokenHandler
	WebSessionHandler  *handler.WebSessionHandler
	AlertPushHandler   *handler.AlertPushHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Metrics            *metrics.Pipeline `optional:"true"`
}

type router struct {
	deviceTokenHandler *handler.DeviceTokenHandler
	webSessionHandler  *handler.WebSessionHandler
	alertPushHandler   *handler.AlertPushHandler
	authMiddleware     *middleware.AuthMiddleware
	metrics            *metrics.Pipeline
}

func NewRouter(params RouterParams) *router {
	return &router{
		deviceTokenHandler: params.DeviceTokenHandler,
		webSessionHandler:  params.WebSessionHandler,
		alertPushHandler:   params.AlertPushHandler,
		authMiddleware:     params.AuthMiddleware,
		metrics:            params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	// Pushed change feed events authenticate with the sender's OIDC token.
	e.POST("/v1/alerts/push", r.alertPushHandler.HandlePush)

	apiV1 := e.Group("/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	deviceTokens := apiV1.Group("/device-tokens")
	{
		deviceTokens.POST("", r.deviceTokenHandler.UpsertToken)
		deviceTokens.GET("", r.deviceTokenHandler.ListTokens)
		deviceTokens.POST("/register", r.deviceTokenHandler.RegisterOwnDevice)
	}

	apiV1.PUT("/web-session", r.webSessionHandler.SaveSession)
}
