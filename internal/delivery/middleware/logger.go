// Package middleware holds transport-agnostic echo middleware.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// LoggerMiddleware writes one access log line per request when debug is on.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handler returns the echo middleware. Errors are handed to the server's
// error handler first so the logged status is the one the client saw.
func (m *LoggerMiddleware) Handler() echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		Skipper:       func(echo.Context) bool { return !m.debug },
		HandleError:   true,
		LogLatency:    true,
		LogRemoteIP:   true,
		LogMethod:     true,
		LogURIPath:    true,
		LogUserAgent:  true,
		LogStatus:     true,
		LogError:      true,
		LogValuesFunc: m.logValues,
	})
}

func (m *LoggerMiddleware) logValues(c echo.Context, v echomiddleware.RequestLoggerValues) error {
	attrs := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", v.Method),
		slog.String("uri", v.URIPath),
		slog.Int("status", v.Status),
		slog.Duration("latency", v.Latency),
		slog.String("remote_ip", v.RemoteIP),
		slog.String("user_agent", v.UserAgent),
		slog.String("time", v.StartTime.Format(time.RFC3339)),
	}
	if q := c.Request().URL.RawQuery; q != "" {
		attrs = append(attrs, slog.String("query", q))
	}
	if v.Error != nil {
		attrs = append(attrs, slog.Any("error", v.Error))
	}

	m.logger.LogAttrs(c.Request().Context(), levelFor(v.Status), "HTTP Request", attrs...)

	return nil
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
