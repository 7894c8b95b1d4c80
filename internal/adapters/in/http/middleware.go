package http

import (
	"log/slog"
	"net/http"
	"strings"

	"bakery/internal/core/domain/model/kernel"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const actorKey = "bakery.actor"

type tokenVerifier interface {
	Verify(token string) (kernel.Actor, error)
}

// Authenticate resolves a bearer token into the acting user. Requests without
// a token continue anonymously; handlers that need a user call requireActor.
func Authenticate(verifier tokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(ctx)
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				return ErrNotAuthenticated
			}

			actor, err := verifier.Verify(strings.TrimSpace(token))
			if err != nil {
				return err
			}

			ctx.Set(actorKey, actor)
			return next(ctx)
		}
	}
}

func requireActor(ctx echo.Context) (kernel.Actor, error) {
	actor, ok := ctx.Get(actorKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, ErrNotAuthenticated
	}
	return actor, nil
}

type requestRecorder interface {
	RequestStarted() func(method, path string, status int)
}

// Metrics records every request under its route template.
func Metrics(recorder requestRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			done := recorder.RequestStarted()

			if err := next(ctx); err != nil {
				ctx.Error(err)
			}

			path := ctx.Path()
			if path == "" {
				path = "unmatched"
			}
			done(ctx.Request().Method, path, ctx.Response().Status)
			return nil
		}
	}
}

// ValidateRequests checks requests that match an operation of the document
// against its parameters and body schemas. Other routes pass through.
func ValidateRequests(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validationErr := openapi3filter.ValidateRequest(req.Context(), input); validationErr != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validationErr.Error())
			}

			return next(ctx)
		}
	}, nil
}

// RequestLogger writes one structured line per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http_access")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				logger.WarnContext(ctx.Request().Context(), "Request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(ctx.Request().Context(), "Request served", attrs...)
			return nil
		},
	})
}
