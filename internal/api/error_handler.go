package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/assetdesk/inventory-api/internal/core/domain"
)

// errorEnvelope is the canonical error body for all API errors.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the
//     client (unless env is "development").
//   - Renders a consistent envelope: {"success": false, "message": "<msg>"}.
func NewHTTPErrorHandler(log zerolog.Logger, env string) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c, env)
		_ = c.JSON(code, errorEnvelope{Success: false, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, env string) (int, string) {
	// Echo's own errors (middleware rejections, router 404, bind failures).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Field-level violations, including bad enum values.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Msg
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid or missing token"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrAssetNotFound):
		return http.StatusNotFound, "asset not found"
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, "category not found"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, domain.ErrDuplicateSerial):
		return http.StatusBadRequest, "serial number already in use"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	if env == "development" {
		return http.StatusInternalServerError, err.Error()
	}
	return http.StatusInternalServerError, "internal server error"
}
