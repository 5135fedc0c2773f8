package web

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// corsMiddleware allows the editor front-end, served from another origin,
// to read the API. Only origins listed in CORS_ALLOWED_ORIGINS are echoed.
func (s *Webserver) corsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !strings.HasPrefix(c.Request().URL.Path, "/api/") {
			return next(c)
		}

		origin := c.Request().Header.Get("Origin")
		allowedOrigin := ""
		if origin != "" {
			if _, ok := s.allowedOrigins[origin]; ok {
				allowedOrigin = origin
			}
		}

		setHeaders := func() {
			h := c.Response().Header()
			h.Set("Vary", "Origin")
			if allowedOrigin == "" {
				return
			}
			h.Set("Access-Control-Allow-Origin", allowedOrigin)
			h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Accept")
			h.Set("Access-Control-Max-Age", "86400")
		}
		setHeaders()

		if c.Request().Method == http.MethodOptions {
			if origin != "" && allowedOrigin == "" {
				return c.NoContent(http.StatusForbidden)
			}
			return c.NoContent(http.StatusNoContent)
		}

		err := next(c)

		// Error handling may reset headers; re-apply before the error is written.
		if err != nil && allowedOrigin != "" && c.Response().Header().Get("Access-Control-Allow-Origin") == "" {
			setHeaders()
		}
		return err
	}
}
