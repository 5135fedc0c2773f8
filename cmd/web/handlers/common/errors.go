package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrBadRequest returns a 400 Bad Request error.
func ErrBadRequest(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, msg)
}

// ErrNotFound returns a 404 Not Found error.
func ErrNotFound(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusNotFound, msg)
}

// ErrUnknownPreset returns a 404 with a machine-readable body so the editor
// can tell a stale project file apart from a missing route.
func ErrUnknownPreset(preset string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusNotFound, map[string]string{
		"error":  "unknown_preset",
		"preset": preset,
	})
}

// ErrInternal returns a 500 Internal Server Error.
func ErrInternal(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusInternalServerError, msg)
}
