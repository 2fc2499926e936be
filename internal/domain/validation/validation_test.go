package validation

import (
	"slices"
	"strings"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categoryRules(name, description string) []Rule {
	return []Rule{
		NotBlank("name", "name", name),
		NotBlank("description", "description", description),
	}
}

func TestCheck_CategorySubsets(t *testing.T) {
	tests := []struct {
		name        string
		catName     string
		description string
		wantMsg     string
		wantFields  []string
		wantMask    uint64
	}{
		{"both missing", "", "  ", "Name and description cannot be null or empty", []string{"name", "description"}, 0b11},
		{"name missing", "", "Category for Art products", "Name cannot be null or empty", []string{"name"}, 0b01},
		{"description missing", "Art", "", "Description cannot be null or empty", []string{"description"}, 0b10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(categoryRules(tt.catName, tt.description)...)
			require.Error(t, err)

			var vErr *Error
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantMsg, vErr.Error())
			assert.Equal(t, tt.wantFields, vErr.Fields)
			assert.Equal(t, tt.wantMask, vErr.Mask)
		})
	}
}

func TestCheck_AllValidIsNoop(t *testing.T) {
	assert.NoError(t, Check(categoryRules("Art", "Category for Art products")...))
	assert.NoError(t, Check())
}

func TestCheck_EvaluatesEveryRule(t *testing.T) {
	calls := 0
	counting := func(ok bool) Rule {
		return Rule{Field: "f", Subject: "f", Phrase: PhraseRequired, Valid: func() bool {
			calls++

			return ok
		}}
	}

	err := Check(counting(false), counting(false), counting(true), counting(false))
	require.Error(t, err)
	assert.Equal(t, 4, calls)
}

func TestCheck_SingleFailureHasNoConnector(t *testing.T) {
	singles := []Rule{
		PositiveInt("quantity", "quantity", 0),
		InRange("rating", "rating", 6, 1, 5),
		NotZeroID("brandAttribute", "brand attribute", uuid.Nil),
		Positive("price", "price", decimal.Zero),
	}

	for _, rule := range singles {
		t.Run(rule.Field, func(t *testing.T) {
			err := Check(rule)
			require.Error(t, err)
			assert.False(t, slices.Contains(strings.Fields(err.Error()), "and"), err.Error())
		})
	}
}

func TestCheck_QuantityMessage(t *testing.T) {
	err := Check(PositiveInt("quantity", "quantity", 0))
	require.Error(t, err)
	assert.Equal(t, "Quantity must be greater than zero", err.Error())
}

func TestCheck_RatingMessage(t *testing.T) {
	err := Check(InRange("rating", "rating", 6, 1, 5))
	require.Error(t, err)
	assert.Equal(t, "Rating must be within the range 1-5", err.Error())
}

func TestCheck_GroupsByPhrase(t *testing.T) {
	err := Check(
		NotZeroID("product", "product", uuid.Nil),
		Positive("price", "price", decimal.NewFromInt(-1)),
		NotBlank("sku", "sku", ""),
		PositiveInt("quantity", "quantity", 0),
		NotZeroID("sizeAttribute", "size attribute", uuid.Nil),
	)
	require.Error(t, err)
	assert.Equal(t,
		"Product, sku, and size attribute cannot be null or empty and price and quantity must be greater than zero",
		err.Error(),
	)

	var vErr *Error
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, uint64(0b11111), vErr.Mask)
	assert.True(t, vErr.Has("sizeAttribute"))
	assert.False(t, vErr.Has("brandAttribute"))
}

func TestJoinList(t *testing.T) {
	tests := []struct {
		items []string
		want  string
	}{
		{items: nil, want: ""},
		{items: []string{"cart"}, want: "cart"},
		{items: []string{"cart", "product"}, want: "cart and product"},
		{items: []string{"cart", "product", "sku"}, want: "cart, product, and sku"},
		{items: []string{"order", "amount", "provider", "status"}, want: "order, amount, provider, and status"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, joinList(tt.items))
		})
	}
}

func TestCheck_IsAppError(t *testing.T) {
	err := Check(NotBlank("name", "name", ""))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "name", appErr.Details())
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestNotNegative(t *testing.T) {
	neg := decimal.NewFromInt(-5)
	zero := decimal.Zero

	assert.NoError(t, Check(NotNegative("total", "total", nil)))
	assert.NoError(t, Check(NotNegative("total", "total", &zero)))
	assert.EqualError(t, Check(NotNegative("total", "total", &neg)), "Total cannot be negative")
}
