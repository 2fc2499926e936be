// Package handler contains the HTTP handlers for the storefront API.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// bind decodes the JSON body into dst and runs the request validator.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("malformed request body")
	}

	return c.Validate(dst)
}

func invalidParam(name string) error {
	return domainerrors.ErrInvalidInput.WithDetails(name)
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, invalidParam(name)
	}

	return id, nil
}

// queryID parses an optional uuid query parameter.
func queryID(c echo.Context, name string) (uuid.UUID, bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return uuid.Nil, false, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, invalidParam(name)
	}

	return id, true, nil
}

func pathInt(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, invalidParam(name)
	}

	return v, nil
}

func pathDecimal(c echo.Context, name string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(c.Param(name))
	if err != nil {
		return decimal.Zero, invalidParam(name)
	}

	return v, nil
}

// timeLayouts are tried in order for date parameters.
var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateOnly}

func parseTime(raw, name string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	return time.Time{}, invalidParam(name)
}

func pathTime(c echo.Context, name string) (time.Time, error) {
	return parseTime(c.Param(name), name)
}

func queryTime(c echo.Context, name string) (time.Time, error) {
	return parseTime(c.QueryParam(name), name)
}

func ok(c echo.Context, data any) error {
	return response.Success(c, http.StatusOK, data)
}

func created(c echo.Context, data any) error {
	return response.Success(c, http.StatusCreated, data)
}

func noContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return ok(c, map[string]string{"status": "ok"})
}
