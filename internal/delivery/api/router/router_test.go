package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/persistence/sqlitetest"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	e          *echo.Echo
	tokens     service.TokenService
	categories usecase.CategoryUsecase
	subs       usecase.SubCategoryUsecase
	products   usecase.ProductUsecase
	attributes usecase.ProductAttributeUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	db := sqlitetest.Open(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access"
	cfg.SecretKey.Refresh = "test-refresh"
	cfg.Auth = &config.AuthConfig{BcryptCost: 4}
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	txManager := postgres.NewTransactionManager(db)
	userRepo := postgres.NewUserRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	subRepo := postgres.NewSubCategoryRepository(db)
	productRepo := postgres.NewProductRepository(db)
	attrRepo := postgres.NewProductAttributeRepository(db)
	skuRepo := postgres.NewProductSkuRepository(db)
	cartItemRepo := postgres.NewCartItemRepository(db)
	orderRepo := postgres.NewOrderDetailsRepository(db)
	orderItemRepo := postgres.NewOrderItemRepository(db)
	paymentRepo := postgres.NewPaymentDetailsRepository(db)

	categories := impl.NewCategoryService(impl.CategoryServiceParams{CategoryRepo: categoryRepo, Logger: logger})
	subs := impl.NewSubCategoryService(impl.SubCategoryServiceParams{SubCategoryRepo: subRepo, CategoryRepo: categoryRepo})
	products := impl.NewProductService(impl.ProductServiceParams{ProductRepo: productRepo, SubCategoryRepo: subRepo})
	attributes := impl.NewProductAttributeService(impl.ProductAttributeServiceParams{
		AttributeRepo: attrRepo,
		SkuRepo:       skuRepo,
		Logger:        logger,
	})
	skus := impl.NewProductSkuService(impl.ProductSkuServiceParams{
		SkuRepo:       skuRepo,
		ProductRepo:   productRepo,
		AttributeRepo: attrRepo,
		Logger:        logger,
	})
	users := impl.NewUserService(impl.UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokens,
		Logger:       logger,
	})

	r := NewRouter(RouterParams{
		UserHandler:     handler.NewUserHandler(users, logger),
		CategoryHandler: handler.NewCategoryHandler(categories, subs),
		ProductHandler:  handler.NewProductHandler(products, attributes, skus),
		CartHandler: handler.NewCartHandler(
			impl.NewCartService(impl.CartServiceParams{
				TxManager: txManager,
				CartRepo:  postgres.NewCartRepository(db),
				ItemRepo:  cartItemRepo,
				SkuRepo:   skuRepo,
				Logger:    logger,
			}),
			impl.NewCartItemService(cartItemRepo),
		),
		OrderHandler: handler.NewOrderHandler(
			impl.NewOrderService(impl.OrderServiceParams{
				TxManager:   txManager,
				OrderRepo:   orderRepo,
				ItemRepo:    orderItemRepo,
				PaymentRepo: paymentRepo,
				Logger:      logger,
			}),
			impl.NewOrderItemService(impl.OrderItemServiceParams{ItemRepo: orderItemRepo, OrderRepo: orderRepo}),
			impl.NewPaymentService(impl.PaymentServiceParams{PaymentRepo: paymentRepo, OrderRepo: orderRepo, Logger: logger}),
		),
		WishlistHandler: handler.NewWishlistHandler(impl.NewWishlistService(impl.WishlistServiceParams{
			TxManager:    txManager,
			WishlistRepo: postgres.NewWishlistRepository(db),
			ItemRepo:     postgres.NewWishListItemRepository(db),
			Logger:       logger,
		})),
		ReviewHandler: handler.NewReviewHandler(impl.NewReviewService(impl.ReviewServiceParams{
			ReviewRepo:  postgres.NewReviewRepository(db),
			ProductRepo: productRepo,
			UserRepo:    userRepo,
		})),
		AuthMiddleware: middleware.NewAuthMiddleware(tokens),
	})

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()
	r.RegisterRoutes(e)

	return &testAPI{
		e:          e,
		tokens:     tokens,
		categories: categories,
		subs:       subs,
		products:   products,
		attributes: attributes,
	}
}

func (a *testAPI) token(t *testing.T, roles ...entity.Role) string {
	t.Helper()

	access, _, err := a.tokens.GenerateTokens(uuid.New(), entity.Roles(roles).ToStrings())
	require.NoError(t, err)

	return access
}

func (a *testAPI) do(t *testing.T, method, path, token, body string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}

	return rec.Code, env
}

func TestRouter_HealthIsPublic(t *testing.T) {
	api := newTestAPI(t)

	status, env := api.do(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestRouter_CatalogWritesNeedAdmin(t *testing.T) {
	api := newTestAPI(t)
	body := `{"name":"Art","description":"Category for Art products"}`

	status, env := api.do(t, http.MethodPost, "/categories", "", body)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	status, env = api.do(t, http.MethodPost, "/categories", api.token(t, entity.RoleUser), body)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	status, env = api.do(t, http.MethodPost, "/categories", api.token(t, entity.RoleAdmin), body)
	require.Equal(t, http.StatusCreated, status)

	var created entity.Category
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEqual(t, uuid.Nil, created.ID)

	// Reads stay public.
	status, _ = api.do(t, http.MethodGet, "/categories/"+created.ID.String(), "", "")
	assert.Equal(t, http.StatusOK, status)
}

func TestRouter_RefreshTokenIsRejected(t *testing.T) {
	api := newTestAPI(t)
	_, refresh, err := api.tokens.GenerateTokens(uuid.New(), []string{entity.RoleAdmin.String()})
	require.NoError(t, err)

	status, env := api.do(t, http.MethodGet, "/carts", refresh, "")

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
}

func TestRouter_ErrorMapping(t *testing.T) {
	api := newTestAPI(t)
	user := api.token(t, entity.RoleUser)

	t.Run("absent id is 404", func(t *testing.T) {
		status, env := api.do(t, http.MethodGet, "/categories/"+uuid.NewString(), "", "")

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "CATEGORY_NOT_FOUND", env.Error.Code)
		assert.NotEmpty(t, env.Meta.RequestID)
	})

	t.Run("malformed id is 400", func(t *testing.T) {
		status, env := api.do(t, http.MethodGet, "/categories/not-a-uuid", "", "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("rule failure is 400 with fields", func(t *testing.T) {
		body := `{"product_id":"` + uuid.NewString() + `","user_id":"` + uuid.NewString() + `","rating":6,"review":"Great"}`

		status, env := api.do(t, http.MethodPost, "/reviews", user, body)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "Rating must be within the range 1-5", env.Error.Message)
		assert.Equal(t, map[string]any{"fields": []any{"rating"}}, env.Error.Details)
	})

	t.Run("cascade on absent order is 404", func(t *testing.T) {
		status, env := api.do(t, http.MethodDelete, "/order-details/"+uuid.NewString(), user, "")

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "ORDER_NOT_FOUND", env.Error.Code)
	})
}

func TestRouter_DuplicateSkuIsConflict(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	category, err := api.categories.Create(ctx, entity.CategoryParams{Name: "Art", Description: "Art"})
	require.NoError(t, err)
	sub, err := api.subs.Create(ctx, entity.SubCategoryParams{CategoryID: category.ID, Name: "Easels", Description: "Easels"})
	require.NoError(t, err)
	product, err := api.products.Create(ctx, entity.ProductParams{
		Name:           "Studio easel",
		Description:    "Beech wood studio easel",
		Summary:        "Easel",
		Cover:          "easel.png",
		SubCategoryIDs: []uuid.UUID{sub.ID},
	})
	require.NoError(t, err)

	attrID := func(attrType entity.AttributeType, value string) string {
		a, err := api.attributes.Create(ctx, entity.ProductAttributeParams{Type: attrType, Value: value})
		require.NoError(t, err)

		return a.ID.String()
	}
	body := `{"product_id":"` + product.ID.String() + `",` +
		`"size_attribute_id":"` + attrID(entity.AttributeSize, "XL") + `",` +
		`"color_attribute_id":"` + attrID(entity.AttributeColor, "Red") + `",` +
		`"brand_attribute_id":"` + attrID(entity.AttributeBrand, "Acme") + `",` +
		`"sku":"EASEL-XL-RED","price":"120.50","quantity":3}`
	admin := api.token(t, entity.RoleAdmin)

	status, _ := api.do(t, http.MethodPost, "/api/product-skus", admin, body)
	require.Equal(t, http.StatusCreated, status)

	status, env := api.do(t, http.MethodPost, "/api/product-skus", admin, body)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "SKU_ALREADY_EXISTS", env.Error.Code)
}

func TestRouter_RegisterLoginProfile(t *testing.T) {
	api := newTestAPI(t)

	status, _ := api.do(t, http.MethodPost, "/auth/register", "",
		`{"first_name":"Ada","last_name":"Lovelace","email":"Ada@Example.com","password":"correct-horse"}`)
	require.Equal(t, http.StatusCreated, status)

	status, env := api.do(t, http.MethodPost, "/auth/register", "",
		`{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"correct-horse"}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "USER_ALREADY_EXISTS", env.Error.Code)

	status, env = api.do(t, http.MethodPost, "/auth/login", "", `{"email":"ada@example.com","password":"wrong-horse"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)

	status, env = api.do(t, http.MethodPost, "/auth/login", "", `{"email":"ada@example.com","password":"correct-horse"}`)
	require.Equal(t, http.StatusOK, status)

	var login struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.AccessToken)

	status, env = api.do(t, http.MethodGet, "/auth/profile", login.AccessToken, "")
	require.Equal(t, http.StatusOK, status)

	var profile entity.User
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "ada@example.com", profile.Email)
}
