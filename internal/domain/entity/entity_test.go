package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	created = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	later   = created.Add(90 * time.Minute)
)

func ptr[T any](v T) *T { return &v }

func TestNewCategory_Art(t *testing.T) {
	c, err := NewCategory(CategoryParams{Name: "Art", Description: "Category for Art products"}, created)
	require.NoError(t, err)
	assert.Nil(t, c.DeletedAt)
	assert.Equal(t, created, c.CreatedAt)
	assert.Equal(t, created, c.UpdatedAt)
}

func TestNewCategory_MissingFields(t *testing.T) {
	_, err := NewCategory(CategoryParams{}, created)
	require.EqualError(t, err, "Name and description cannot be null or empty")
}

func TestCategory_ApplyEqualPayloadOnlyAdvancesUpdatedAt(t *testing.T) {
	current := Category{ID: uuid.New(), Name: "Art", Description: "desc", CreatedAt: created, UpdatedAt: created}

	next := current.Apply(CategoryPatch{Name: ptr("Art"), Description: ptr("desc")}, later)

	assert.Equal(t, current.ID, next.ID)
	assert.Equal(t, current.Name, next.Name)
	assert.Equal(t, current.Description, next.Description)
	assert.Equal(t, created, next.CreatedAt)
	assert.Equal(t, later, next.UpdatedAt)
	assert.Nil(t, next.DeletedAt)
}

func TestCategory_MarkDeletedLeavesOriginal(t *testing.T) {
	current := Category{ID: uuid.New(), Name: "Art", Description: "desc", CreatedAt: created}

	deleted := current.MarkDeleted(later)

	require.NotNil(t, deleted.DeletedAt)
	assert.Equal(t, later, *deleted.DeletedAt)
	assert.Nil(t, current.DeletedAt)
}

func TestCartItem_NewWithZeroQuantity(t *testing.T) {
	_, err := NewCartItem(CartItemParams{
		CartID:       uuid.New(),
		ProductID:    uuid.New(),
		ProductSkuID: uuid.New(),
		Quantity:     0,
	}, created)
	require.EqualError(t, err, "Quantity must be greater than zero")
}

func TestCartItem_ApplyQuantityOnlyPreservesReferences(t *testing.T) {
	current := CartItem{
		ID:           uuid.New(),
		CartID:       uuid.New(),
		ProductID:    uuid.New(),
		ProductSkuID: uuid.New(),
		Quantity:     1,
		CreatedAt:    created,
		UpdatedAt:    created,
	}

	next := current.Apply(CartItemPatch{Quantity: ptr(4)}, later)

	assert.Equal(t, 4, next.Quantity)
	assert.Equal(t, current.CartID, next.CartID)
	assert.Equal(t, current.ProductID, next.ProductID)
	assert.Equal(t, current.ProductSkuID, next.ProductSkuID)
	assert.Equal(t, created, next.CreatedAt)
	assert.Equal(t, later, next.UpdatedAt)
	assert.Equal(t, 1, current.Quantity)
}

func newSku(t *testing.T) *ProductSku {
	t.Helper()

	sku, err := NewProductSku(ProductSkuParams{
		ProductID: uuid.New(),
		Size:      AttributeRef{ID: uuid.New(), Type: AttributeSize, Value: "XL"},
		Color:     AttributeRef{ID: uuid.New(), Type: AttributeColor, Value: "Red"},
		Brand:     AttributeRef{ID: uuid.New(), Type: AttributeBrand, Value: "Acme"},
		Sku:       "ACME-XL-RED",
		Price:     decimal.NewFromFloat(100.0),
		Quantity:  10,
	}, created)
	require.NoError(t, err)

	return sku
}

func TestProductSku_ApplyPriceOnly(t *testing.T) {
	current := *newSku(t)

	next := current.Apply(ProductSkuPatch{Price: ptr(decimal.NewFromFloat(120.0))}, later)

	assert.True(t, decimal.NewFromFloat(120.0).Equal(next.Price))
	assert.Equal(t, current.Sku, next.Sku)
	assert.Equal(t, current.ProductID, next.ProductID)
	assert.Equal(t, current.Size, next.Size)
	assert.Equal(t, current.Color, next.Color)
	assert.Equal(t, current.Brand, next.Brand)
	assert.Equal(t, current.Quantity, next.Quantity)
	assert.NoError(t, next.Validate())
}

func TestProductSku_AttributeTypeMismatch(t *testing.T) {
	sku := *newSku(t)
	sku.Size = AttributeRef{ID: uuid.New(), Type: AttributeColor, Value: "XL"}

	err := sku.Validate()
	require.EqualError(t, err, "Size attribute must be of type SIZE")
}

func TestProductSku_TypeMatchIgnoresValue(t *testing.T) {
	sku := *newSku(t)
	sku.Size = AttributeRef{ID: uuid.New(), Type: AttributeSize, Value: "COLOR"}

	assert.NoError(t, sku.Validate())
}

func TestProductSku_PriceAndQuantity(t *testing.T) {
	sku := *newSku(t)
	sku.Price = decimal.Zero
	sku.Quantity = -1

	require.EqualError(t, sku.Validate(), "Price and quantity must be greater than zero")
}

func TestNewReview_RatingOutOfRange(t *testing.T) {
	for _, rating := range []int{0, 6} {
		_, err := NewReview(ReviewParams{
			ProductID: uuid.New(),
			UserID:    uuid.New(),
			Rating:    rating,
			Review:    "Great",
		}, created)
		require.EqualError(t, err, "Rating must be within the range 1-5")
	}
}

func TestNewReview_Bounds(t *testing.T) {
	for _, rating := range []int{MinRating, MaxRating} {
		_, err := NewReview(ReviewParams{ProductID: uuid.New(), UserID: uuid.New(), Rating: rating, Review: "ok"}, created)
		assert.NoError(t, err)
	}
}

func TestNewProduct_RequiresSubCategories(t *testing.T) {
	_, err := NewProduct(ProductParams{
		Name:        "Easel",
		Description: "Wooden easel",
		Summary:     "Easel",
		Cover:       "cover.png",
	}, created)
	require.EqualError(t, err, "Subcategories cannot be null or empty")
}

func TestProduct_ApplyDoesNotShareSubCategories(t *testing.T) {
	ids := []uuid.UUID{uuid.New()}
	current := Product{Name: "Easel", SubCategoryIDs: ids}

	next := current.Apply(ProductPatch{}, later)
	next.SubCategoryIDs[0] = uuid.New()

	assert.Equal(t, ids[0], current.SubCategoryIDs[0])
}

func TestNewWishlist(t *testing.T) {
	products := []uuid.UUID{uuid.New(), uuid.New()}

	w, err := NewWishlist(WishlistParams{UserID: uuid.New(), ProductIDs: products}, created)
	require.NoError(t, err)
	require.Len(t, w.Items, 2)
	for i, item := range w.Items {
		assert.Equal(t, products[i], item.ProductID)
		assert.Equal(t, created, item.DateAdded)
	}
	assert.Nil(t, w.DeletedAt)
}

func TestNewWishlist_RequiresUserAndItems(t *testing.T) {
	_, err := NewWishlist(WishlistParams{}, created)
	require.EqualError(t, err, "User and items cannot be null or empty")
}

func TestNewWishListItem_DateAddedDefault(t *testing.T) {
	item, err := NewWishListItem(WishListItemParams{WishlistID: uuid.New(), ProductID: uuid.New()}, created)
	require.NoError(t, err)
	assert.Equal(t, created, item.DateAdded)

	custom := created.Add(-time.Hour)
	item, err = NewWishListItem(WishListItemParams{WishlistID: uuid.New(), ProductID: uuid.New(), DateAdded: &custom}, created)
	require.NoError(t, err)
	assert.Equal(t, custom, item.DateAdded)
}

func TestNewPaymentDetails(t *testing.T) {
	_, err := NewPaymentDetails(PaymentDetailsParams{}, created)
	require.EqualError(t, err, "Order, amount, provider, and status cannot be null or empty")

	_, err = NewPaymentDetails(PaymentDetailsParams{
		OrderDetailsID: uuid.New(),
		Amount:         ptr(decimal.NewFromInt(-1)),
		Provider:       "stripe",
		Status:         PaymentStatusPending,
	}, created)
	require.EqualError(t, err, "Amount must be greater than zero")
}

func TestNewCart_TotalRequired(t *testing.T) {
	_, err := NewCart(CartParams{UserID: uuid.New()}, created)
	require.EqualError(t, err, "Total cannot be null or empty")

	cart, err := NewCart(CartParams{UserID: uuid.New(), Total: ptr(decimal.Zero)}, created)
	require.NoError(t, err)
	assert.True(t, cart.Total.IsZero())
}

func TestNewUser_DefaultsRoleAndRejectsFutureBirthDate(t *testing.T) {
	u, err := NewUser(UserParams{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", PasswordHash: "hash"}, created)
	require.NoError(t, err)
	assert.Equal(t, Roles{RoleUser}, u.Roles)

	future := created.AddDate(1, 0, 0)
	_, err = NewUser(UserParams{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", PasswordHash: "hash", BirthDate: &future}, created)
	require.EqualError(t, err, "Birth date cannot be in the future")
}

func TestRolesFromStrings(t *testing.T) {
	assert.Equal(t, Roles{RoleAdmin, RoleUser}, RolesFromStrings([]string{"admin", "bogus", "user", "admin"}))
}
