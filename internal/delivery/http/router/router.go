// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"farmgrid/config"
	"farmgrid/internal/delivery/http/router/handler"
	"farmgrid/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config              *config.Config
	WebhookHandler      *handler.WebhookHandler
	OTPHandler          *handler.OTPHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	webhookHandler *handler.WebhookHandler
	otpHandler     *handler.OTPHandler
	requestID      *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		webhookHandler: params.WebhookHandler,
		otpHandler:     params.OTPHandler,
		requestID:      params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestID.Process)

	// Health check and metrics endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Provider-facing webhook routes
	webhookGroup := e.Group("/webhooks/sms")
	{
		webhookGroup.POST("/incoming", r.webhookHandler.ProcessIncomingSMS)
		if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
			webhookGroup.POST("/test", r.webhookHandler.TestWebhook)
		}
	}

	// Verification code routes
	otpGroup := e.Group("/auth/otp")
	{
		otpGroup.POST("/request", r.otpHandler.Send)
		otpGroup.POST("/verify", r.otpHandler.Verify)
	}
}
