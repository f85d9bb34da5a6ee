package rest

import (
	"net/http"

	"blog-backend/config"
	"blog-backend/di"
	middleware_custom "blog-backend/middleware"
	"blog-backend/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// Request ID first so every later stage can correlate
	e.Use(middleware_custom.RequestIDMiddleware())

	e.Use(middleware.Recover())

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "X-Request-ID"},
		MaxAge:       86400,
	}))

	rateLimit := middleware_custom.NewRateLimitMiddleware(cfg.RateLimit)
	e.Use(rateLimit.Limit())

	e.Use(middleware_custom.MetricsMiddleware())
	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			// PDFs and metrics are not worth compressing here
			return c.Path() == "/v1/articles/:id/pdf" || c.Path() == "/metrics"
		},
	}))

	auth := middleware_custom.NewAuthMiddleware(logger.Logger, cfg)

	v1 := e.Group("/v1")

	v1.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	})

	registerArticleRoutes(v1, container, auth)
	registerCommentRoutes(v1, container, auth)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
