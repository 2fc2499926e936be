// Package context carries per-request values from the HTTP layer into usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from incoming requests and echoed on responses.
const HeaderXRequestID = "X-Request-Id"

type scopeKey struct{}

// scope is what a request leaves on its context.Context.
type scope struct {
	requestID string
	logger    *slog.Logger
}

const echoRequestIDKey = "request_id"

// GetRequestID returns the id stored on the echo context, minting one when
// the request id middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID stores id on the echo context for response metadata.
func SetRequestID(c echo.Context, id string) {
	c.Set(echoRequestIDKey, id)
}

// WithRequest binds the request id and its logger to ctx.
func WithRequest(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope{requestID: requestID, logger: logger})
}

// GetRequestIDFromContext returns "" outside an HTTP request.
func GetRequestIDFromContext(ctx context.Context) string {
	s, _ := ctx.Value(scopeKey{}).(scope)

	return s.requestID
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when ctx
// did not come through the HTTP layer.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if s, ok := ctx.Value(scopeKey{}).(scope); ok && s.logger != nil {
		return s.logger
	}

	return fallback
}
