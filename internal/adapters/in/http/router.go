package http

import (
	"log/slog"
	"net/http"
	"time"

	"bakery/api"
	"bakery/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type metricsRecorder interface {
	requestRecorder
	Handler() http.Handler
}

type RouterConfig struct {
	Doc            *openapi3.T
	Verifier       tokenVerifier
	Metrics        metricsRecorder
	Logger         *slog.Logger
	RequestTimeout time.Duration
	CORSOrigins    []string
}

// NewRouter assembles the echo instance: middleware, API routes, metrics
// and Swagger UI.
func NewRouter(server servers.ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	validator, err := ValidateRequests(cfg.Doc)
	if err != nil {
		return nil, err
	}
	if err = api.RegisterSwagger(cfg.Doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(cfg.Logger)

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	e.Use(
		middleware.Recover(),
		middleware.RequestID(),
		Metrics(cfg.Metrics),
		RequestLogger(cfg.Logger),
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		}),
	)
	if cfg.RequestTimeout > 0 {
		e.Use(middleware.ContextTimeout(cfg.RequestTimeout))
	}

	e.GET("/metrics", echo.WrapHandler(cfg.Metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	apiGroup := e.Group("", Authenticate(cfg.Verifier), validator)
	servers.RegisterHandlers(apiGroup, server)

	return e, nil
}
