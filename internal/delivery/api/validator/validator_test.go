package validator

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Nickname string `json:"-"`
}

func TestCustomValidator_Valid(t *testing.T) {
	err := New().Validate(&registerRequest{Email: "a@b.co", Password: "longenough"})

	assert.NoError(t, err)
}

func TestCustomValidator_ReportsJSONFieldNames(t *testing.T) {
	err := New().Validate(&registerRequest{Email: "not-an-email", Password: "short"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_INPUT", appErr.ErrorCode())
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "email,password", appErr.Details())
}
