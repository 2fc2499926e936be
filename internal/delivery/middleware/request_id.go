package middleware

import (
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// RequestIDMiddleware accepts or mints an X-Request-Id and derives a
// request-scoped logger from it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Handler returns the echo middleware.
func (m *RequestIDMiddleware) Handler() echo.MiddlewareFunc {
	return echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		TargetHeader:     deliverycontext.HeaderXRequestID,
		Generator:        uuid.NewString,
		RequestIDHandler: m.bind,
	})
}

// bind runs before the handler chain, once the id is known.
func (m *RequestIDMiddleware) bind(c echo.Context, requestID string) {
	deliverycontext.SetRequestID(c, requestID)

	reqLogger := m.logger.With(slog.String("request_id", requestID))
	ctx := deliverycontext.WithRequest(c.Request().Context(), requestID, reqLogger)
	c.SetRequest(c.Request().WithContext(ctx))
}
