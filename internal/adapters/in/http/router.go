package http

import (
	"log/slog"
	"net/http"
	"time"

	"spraying/api"
	"spraying/internal/generated/servers"
	"spraying/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	// APIBasePath matches the server url in api/openapi.yaml.
	APIBasePath = "/api/v1"

	limiterIdleTTL = 3 * time.Minute
)

type RouterConfig struct {
	Server        *Server
	Authenticator *Authenticator
	Metrics       *metrics.Metrics
	Logger        *slog.Logger

	// RateLimitRPS disables rate limiting when zero.
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter assembles the echo instance: health, metrics and docs endpoints
// are public, everything under APIBasePath needs a bearer token and must
// match the OpenAPI contract.
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	doc, err := api.Load()
	if err != nil {
		return nil, err
	}
	validate, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}
	registerDoc(doc)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))
	e.Use(recordMetrics(cfg.Metrics))
	if cfg.RateLimitRPS > 0 {
		e.Use(rateLimiter(newLimiterStore(cfg.RateLimitRPS, cfg.RateLimitBurst, limiterIdleTTL)))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(cfg.Metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	g := e.Group(APIBasePath, cfg.Authenticator.Middleware(), validate)
	servers.RegisterHandlers(g, cfg.Server)

	return e, nil
}
