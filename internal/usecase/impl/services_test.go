package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/validation"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_CreateArt(t *testing.T) {
	s := newServices(t)

	category, err := s.categories.Create(context.Background(), entity.CategoryParams{
		Name:        "Art",
		Description: "Category for Art products",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, category.ID)
	assert.Nil(t, category.DeletedAt)
}

func TestCategoryService_UpdateWithEqualPayloadOnlyTouchesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	created, err := s.categories.Create(ctx, entity.CategoryParams{Name: "Art", Description: "Paint"})
	require.NoError(t, err)

	name, description := "Art", "Paint"
	updated, err := s.categories.Update(ctx, created.ID, entity.CategoryPatch{Name: &name, Description: &description})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Description, updated.Description)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestCategoryService_MissingIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	id := uuid.New()

	_, err := s.categories.Get(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))

	name := "Other"
	_, err = s.categories.Update(ctx, id, entity.CategoryPatch{Name: &name})
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))

	err = s.categories.Delete(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))

	_, err = s.categories.FindMostRecent(ctx)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCategoryService_DeleteWithSubCategoriesIsRejected(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	category, err := s.categories.Create(ctx, entity.CategoryParams{Name: "Art", Description: "Paint"})
	require.NoError(t, err)
	_, err = s.subs.Create(ctx, entity.SubCategoryParams{CategoryID: category.ID, Name: "Oils", Description: "Oil paint"})
	require.NoError(t, err)

	err = s.categories.Delete(ctx, category.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrIntegrityViolation))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidReference))
}

func TestSubCategoryService_UnknownCategoryIsNotFound(t *testing.T) {
	s := newServices(t)

	_, err := s.subs.Create(context.Background(), entity.SubCategoryParams{
		CategoryID:  uuid.New(),
		Name:        "Oils",
		Description: "Oil paint",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCartService_AddItemWithZeroQuantity(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	cart, err := s.carts.Create(ctx, entity.CartParams{UserID: uuid.New(), Total: amount(0)})
	require.NoError(t, err)

	_, err = s.carts.AddItem(ctx, cart.ID, usecase.CartLineInput{
		ProductID:    uuid.New(),
		ProductSkuID: uuid.New(),
		Quantity:     0,
	})

	require.Error(t, err)
	assert.Equal(t, "Quantity must be greater than zero", err.Error())
}

func TestCartItemService_QuantityPatchKeepsReferences(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	c := s.seedCatalog(t)

	sku, err := s.skus.Create(ctx, c.skuInput("EASEL-XL-RED", 100))
	require.NoError(t, err)
	cart, err := s.carts.Create(ctx, entity.CartParams{UserID: uuid.New(), Total: amount(0)})
	require.NoError(t, err)
	item, err := s.carts.AddItem(ctx, cart.ID, usecase.CartLineInput{ProductID: c.product.ID, ProductSkuID: sku.ID, Quantity: 1})
	require.NoError(t, err)

	quantity := 3
	updated, err := s.cartItems.Update(ctx, item.ID, entity.CartItemPatch{Quantity: &quantity})
	require.NoError(t, err)

	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, c.product.ID, updated.ProductID)
	assert.Equal(t, sku.ID, updated.ProductSkuID)
	assert.Equal(t, cart.ID, updated.CartID)
}

func TestCartService_DeleteRemovesItems(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	c := s.seedCatalog(t)

	sku, err := s.skus.Create(ctx, c.skuInput("EASEL-XL-RED", 100))
	require.NoError(t, err)
	cart, err := s.carts.Create(ctx, entity.CartParams{UserID: uuid.New(), Total: amount(200)})
	require.NoError(t, err)
	item, err := s.carts.AddItem(ctx, cart.ID, usecase.CartLineInput{ProductID: c.product.ID, ProductSkuID: sku.ID, Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, s.carts.Delete(ctx, cart.ID))

	_, err = s.cartItems.Get(ctx, item.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	_, err = s.carts.Get(ctx, cart.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestOrderService_DeleteCascadesItemsAndPayment(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	c := s.seedCatalog(t)

	sku, err := s.skus.Create(ctx, c.skuInput("EASEL-XL-RED", 100))
	require.NoError(t, err)

	order, err := s.orders.PlaceOrder(ctx, usecase.PlaceOrderInput{
		UserID: uuid.New(),
		Total:  amount(100),
		Items:  []usecase.OrderLineInput{{ProductID: c.product.ID, ProductSkuID: sku.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)

	payment, err := s.payments.RecordPayment(ctx, order.Order.ID, usecase.RecordPaymentInput{
		Amount:   amount(100),
		Provider: "stripe",
		Status:   entity.PaymentStatusCompleted,
	})
	require.NoError(t, err)

	view, err := s.orders.Get(ctx, order.Order.ID)
	require.NoError(t, err)
	require.NotNil(t, view.PaymentID)
	assert.Equal(t, payment.ID, *view.PaymentID)

	require.NoError(t, s.orders.Delete(ctx, order.Order.ID))

	linked, err := s.orders.FindByPaymentID(ctx, payment.ID)
	require.NoError(t, err)
	assert.Empty(t, linked)

	_, err = s.orderItems.Get(ctx, order.Items[0].ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	_, err = s.payments.Get(ctx, payment.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestOrderService_DeleteRemovesEveryLine(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	c := s.seedCatalog(t)

	sku, err := s.skus.Create(ctx, c.skuInput("EASEL-XL-RED", 100))
	require.NoError(t, err)

	lines := make([]usecase.OrderLineInput, 5)
	for i := range lines {
		lines[i] = usecase.OrderLineInput{ProductID: c.product.ID, ProductSkuID: sku.ID, Quantity: i + 1}
	}
	order, err := s.orders.PlaceOrder(ctx, usecase.PlaceOrderInput{UserID: uuid.New(), Total: amount(1500), Items: lines})
	require.NoError(t, err)
	_, err = s.payments.RecordPayment(ctx, order.Order.ID, usecase.RecordPaymentInput{
		Amount:   amount(1500),
		Provider: "paypal",
		Status:   entity.PaymentStatusPending,
	})
	require.NoError(t, err)

	require.NoError(t, s.orders.Delete(ctx, order.Order.ID))

	items, err := s.orderItems.FindByOrderID(ctx, order.Order.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	count, err := s.payments.CountByStatus(ctx, entity.PaymentStatusPending)
	require.NoError(t, err)
	assert.Zero(t, count)

	err = s.orders.Delete(ctx, order.Order.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestOrderService_PlaceOrderRejectsInvalidLine(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	_, err := s.orders.PlaceOrder(ctx, usecase.PlaceOrderInput{
		UserID: uuid.New(),
		Total:  amount(10),
		Items:  []usecase.OrderLineInput{{ProductID: uuid.New(), ProductSkuID: uuid.New(), Quantity: 0}},
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	all, err := s.orders.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPaymentService_SecondPaymentForOrderIsRejected(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	order, err := s.orders.Create(ctx, entity.OrderDetailsParams{UserID: uuid.New(), Total: amount(50)})
	require.NoError(t, err)

	input := usecase.RecordPaymentInput{Amount: amount(50), Provider: "stripe", Status: entity.PaymentStatusCompleted}
	_, err = s.payments.RecordPayment(ctx, order.ID, input)
	require.NoError(t, err)

	_, err = s.payments.RecordPayment(ctx, order.ID, input)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentAlreadyRecorded))

	_, err = s.payments.RecordPayment(ctx, uuid.New(), input)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestPaymentService_DeleteByOrderID(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	order, err := s.orders.Create(ctx, entity.OrderDetailsParams{UserID: uuid.New(), Total: amount(50)})
	require.NoError(t, err)
	_, err = s.payments.RecordPayment(ctx, order.ID, usecase.RecordPaymentInput{
		Amount:   amount(50),
		Provider: "stripe",
		Status:   entity.PaymentStatusCompleted,
	})
	require.NoError(t, err)

	require.NoError(t, s.payments.DeleteByOrderID(ctx, order.ID))

	err = s.payments.DeleteByOrderID(ctx, order.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	_, err = s.payments.FindByOrderID(ctx, order.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestProductSkuService_PriceUpdateKeepsOtherFields(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	c := s.seedCatalog(t)

	created, err := s.skus.Create(ctx, c.skuInput("EASEL-XL-RED", 100))
	require.NoError(t, err)

	price := decimal.NewFromInt(120)
	updated, err := s.skus.Update(ctx, created.ID, usecase.UpdateSkuInput{Price: &price})
	require.NoError(t, err)

	assert.True(t, updated.Price.Equal(price))
	assert.Equal(t, created.Sku, updated.Sku)
	assert.Equal(t, created.Quantity, updated.Quantity)
	assert.Equal(t, created.ProductID, updated.ProductID)
	assert.Equal(t, created.Size, updated.Size)
	assert.Equal(t, created.Color, updated.Color)
	assert.Equal(t, created.Brand, updated.Brand)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
}

func TestProductSkuService_DuplicateCodeIsIntegrityViolation(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	c := s.seedCatalog(t)

	_, err := s.skus.Create(ctx, c.skuInput("EASEL-XL-RED", 100))
	require.NoError(t, err)

	_, err = s.skus.Create(ctx, c.skuInput("EASEL-XL-RED", 90))
	assert.True(t, errors.Is(err, domainerrors.ErrIntegrityViolation))
	assert.True(t, errors.Is(err, domainerrors.ErrSkuAlreadyExists))

	_, err = s.skus.Create(ctx, c.skuInput("EASEL-XL-RED-B", 90))
	assert.NoError(t, err)
}

func TestProductSkuService_AttributeOfWrongType(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	c := s.seedCatalog(t)

	input := c.skuInput("EASEL-XL-RED", 100)
	input.SizeAttributeID = c.color.ID

	_, err := s.skus.Create(ctx, input)

	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Size attribute must be of type SIZE", verr.Error())
}

func TestProductSkuService_UnknownAttributeIsNotFound(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	c := s.seedCatalog(t)

	input := c.skuInput("EASEL-XL-RED", 100)
	input.BrandAttributeID = uuid.New()

	_, err := s.skus.Create(ctx, input)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestProductAttributeService_RetypeReferencedAttribute(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	c := s.seedCatalog(t)

	sku, err := s.skus.Create(ctx, c.skuInput("EASEL-XL-RED", 100))
	require.NoError(t, err)

	color := entity.AttributeColor
	_, err = s.attributes.Update(ctx, c.size.ID, entity.ProductAttributePatch{Type: &color})

	assert.True(t, errors.Is(err, domainerrors.ErrIntegrityViolation))
	assert.True(t, errors.Is(err, domainerrors.ErrAttributeInUse))
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ATTRIBUTE_IN_USE", appErr.ErrorCode())

	got, err := s.skus.Get(ctx, sku.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AttributeSize, got.Size.Type)

	price := decimal.NewFromInt(90)
	_, err = s.skus.Update(ctx, sku.ID, usecase.UpdateSkuInput{Price: &price})
	assert.NoError(t, err)
}

func TestProductAttributeService_RenameReferencedAttribute(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	c := s.seedCatalog(t)

	sku, err := s.skus.Create(ctx, c.skuInput("EASEL-XL-RED", 100))
	require.NoError(t, err)

	size, value := entity.AttributeSize, "XXL"
	updated, err := s.attributes.Update(ctx, c.size.ID, entity.ProductAttributePatch{Type: &size, Value: &value})
	require.NoError(t, err)
	assert.Equal(t, "XXL", updated.Value)

	got, err := s.skus.Get(ctx, sku.ID)
	require.NoError(t, err)
	assert.Equal(t, "XXL", got.Size.Value)
}

func TestProductAttributeService_RetypeUnreferencedAttribute(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	c := s.seedCatalog(t)

	color := entity.AttributeColor
	updated, err := s.attributes.Update(ctx, c.size.ID, entity.ProductAttributePatch{Type: &color})

	require.NoError(t, err)
	assert.Equal(t, entity.AttributeColor, updated.Type)
	assert.Equal(t, "XL", updated.Value)
}

func TestWishlistService_SoftDeleteHidesFromList(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	c := s.seedCatalog(t)

	wishlist, err := s.wishlists.Create(ctx, entity.WishlistParams{UserID: uuid.New(), ProductIDs: []uuid.UUID{c.product.ID}})
	require.NoError(t, err)

	_, err = s.wishlists.SoftDelete(ctx, wishlist.ID)
	require.NoError(t, err)

	all, err := s.wishlists.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	found, err := s.wishlists.Get(ctx, wishlist.ID)
	require.NoError(t, err)
	require.NotNil(t, found.DeletedAt)
	assert.Len(t, found.Items, 1)
}

func TestWishlistService_UpdateAndSoftDeleteReturnItems(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	c := s.seedCatalog(t)

	wishlist, err := s.wishlists.Create(ctx, entity.WishlistParams{UserID: uuid.New(), ProductIDs: []uuid.UUID{c.product.ID}})
	require.NoError(t, err)

	owner := uuid.New()
	updated, err := s.wishlists.Update(ctx, wishlist.ID, entity.WishlistPatch{UserID: &owner})
	require.NoError(t, err)
	assert.Equal(t, owner, updated.UserID)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, c.product.ID, updated.Items[0].ProductID)

	deleted, err := s.wishlists.SoftDelete(ctx, wishlist.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted.DeletedAt)
	assert.Len(t, deleted.Items, 1)
}

func TestWishlistService_DeleteCascadesItems(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	c := s.seedCatalog(t)

	wishlist, err := s.wishlists.Create(ctx, entity.WishlistParams{UserID: uuid.New(), ProductIDs: []uuid.UUID{c.product.ID}})
	require.NoError(t, err)
	added, err := s.wishlists.AddItem(ctx, wishlist.ID, entity.WishListItemParams{ProductID: c.product.ID})
	require.NoError(t, err)

	require.NoError(t, s.wishlists.Delete(ctx, wishlist.ID))

	_, err = s.wishlists.Get(ctx, wishlist.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	_, err = s.wishlists.UpdateItem(ctx, added.ID, entity.WishListItemPatch{})
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestWishlistService_RemoveItemOfAnotherWishlist(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	c := s.seedCatalog(t)

	first, err := s.wishlists.Create(ctx, entity.WishlistParams{UserID: uuid.New(), ProductIDs: []uuid.UUID{c.product.ID}})
	require.NoError(t, err)
	second, err := s.wishlists.Create(ctx, entity.WishlistParams{UserID: uuid.New(), ProductIDs: []uuid.UUID{c.product.ID}})
	require.NoError(t, err)

	err = s.wishlists.RemoveItem(ctx, second.ID, first.Items[0].ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))

	require.NoError(t, s.wishlists.RemoveItem(ctx, first.ID, first.Items[0].ID))
	found, err := s.wishlists.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Items)
}

func TestReviewService_RatingOutOfRange(t *testing.T) {
	s := newServices(t)

	_, err := s.reviews.Create(context.Background(), entity.ReviewParams{
		ProductID: uuid.New(),
		UserID:    uuid.New(),
		Rating:    6,
		Review:    "Too good",
	})

	require.Error(t, err)
	assert.Equal(t, "Rating must be within the range 1-5", err.Error())
}

func TestReviewService_RatingFinders(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	c := s.seedCatalog(t)

	user, err := entity.NewUser(entity.UserParams{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		PasswordHash: "hash",
	}, time.Now().UTC())
	require.NoError(t, err)
	user, err = postgres.NewUserRepository(s.db).Save(ctx, user)
	require.NoError(t, err)

	for _, rating := range []int{3, 4, 5} {
		_, err := s.reviews.Create(ctx, entity.ReviewParams{ProductID: c.product.ID, UserID: user.ID, Rating: rating, Review: "Solid"})
		require.NoError(t, err)
	}

	above, err := s.reviews.FindByRatingGreaterThan(ctx, 4)
	require.NoError(t, err)
	require.Len(t, above, 1)
	assert.Equal(t, 5, above[0].Rating)

	exact, err := s.reviews.FindByRating(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, exact, 1)

	_, err = s.reviews.Create(ctx, entity.ReviewParams{ProductID: c.product.ID, UserID: uuid.New(), Rating: 4, Review: "Solid"})
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
