package http

import (
	"errors"
	"log/slog"
	"net/http"

	"bakery/internal/generated/servers"
	"bakery/internal/pkg/auth"
	"bakery/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var (
	ErrNotAuthenticated = errors.New("not authorized, missing token")

	errInvalidBody = echo.NewHTTPError(http.StatusBadRequest, "Invalid request body.")
)

// StatusFor maps an application error to its HTTP status code.
func StatusFor(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, ErrNotAuthenticated), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(err error, status int) string {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
		return http.StatusText(httpErr.Code)
	case errors.Is(err, jwt.ErrTokenExpired):
		return "Session expired. Please login again."
	case errors.Is(err, auth.ErrInvalidToken):
		return "Invalid authentication token."
	case errors.Is(err, ErrNotAuthenticated):
		return "Not authorized. Missing token."
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return "Order was changed by another request. Reload and try again."
	case status == http.StatusInternalServerError:
		return "Internal server error"
	default:
		return err.Error()
	}
}

// ErrorHandler renders every failure as servers.Error and logs server faults.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http_errors")

	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status := StatusFor(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "Request failed",
				"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(status)
		} else {
			writeErr = ctx.JSON(status, servers.Error{Code: status, Message: messageFor(err, status)})
		}
		if writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}
