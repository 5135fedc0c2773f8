package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"thirdcoast.systems/canvas/cmd/web/handlers/api/resolution_api"
	"thirdcoast.systems/canvas/internal/config"
)

type Webserver struct {
	*echo.Echo
	conf           config.Config
	allowedOrigins map[string]struct{}
}

func NewWebserver(ctx context.Context, conf config.Config) (*Webserver, error) {
	e := echo.New()

	webserver := &Webserver{
		Echo:           e,
		conf:           conf,
		allowedOrigins: originSet(conf.AllowedOrigins()),
	}

	if len(webserver.allowedOrigins) == 0 {
		slog.InfoContext(ctx, "CORS_ALLOWED_ORIGINS not set; cross-origin API requests will be refused")
	}

	if err := webserver.registerRoutes(); err != nil {
		return nil, err
	}

	if err := webserver.setupMiddleware(); err != nil {
		return nil, err
	}

	return webserver, nil
}

func originSet(origins []string) map[string]struct{} {
	set := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		set[o] = struct{}{}
	}
	return set
}

func (s *Webserver) registerRoutes() error {
	s.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	apiGroup := s.Group("/api")
	apiGroup.GET("/resolutions", resolution_api.HandleIndex(s.conf.DefaultPreset))
	apiGroup.GET("/resolutions/:preset", resolution_api.HandleShow())
	apiGroup.GET("/resolutions/:preset/canvas", resolution_api.HandleCanvas())

	return nil
}

func (s *Webserver) setupMiddleware() error {
	s.HideBanner = true
	s.HidePort = true
	s.Use(middleware.BodyLimit("1M"))
	s.Use(middleware.Recover())
	s.Use(middleware.RequestID())
	// Root-level so preflights reach it even without an OPTIONS route.
	s.Use(s.corsMiddleware)
	s.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
	s.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/healthz"
		},
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  false,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				fields = append(fields, "error", v.Error)
			}
			slog.Info("request", fields...)
			return nil
		},
	}))

	return nil
}
