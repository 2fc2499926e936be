package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/persistence/sqlitetest"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// services wires every storefront service on one in-memory database.
type services struct {
	db         *gorm.DB
	categories usecase.CategoryUsecase
	subs       usecase.SubCategoryUsecase
	products   usecase.ProductUsecase
	attributes usecase.ProductAttributeUsecase
	skus       usecase.ProductSkuUsecase
	carts      usecase.CartUsecase
	cartItems  usecase.CartItemUsecase
	orders     usecase.OrderUsecase
	orderItems usecase.OrderItemUsecase
	payments   usecase.PaymentUsecase
	wishlists  usecase.WishlistUsecase
	reviews    usecase.ReviewUsecase
}

func newServices(t *testing.T) services {
	t.Helper()

	db := sqlitetest.Open(t)
	logger := newDiscardLogger()
	txManager := postgres.NewTransactionManager(db)

	categoryRepo := postgres.NewCategoryRepository(db)
	subRepo := postgres.NewSubCategoryRepository(db)
	productRepo := postgres.NewProductRepository(db)
	attrRepo := postgres.NewProductAttributeRepository(db)
	skuRepo := postgres.NewProductSkuRepository(db)
	cartRepo := postgres.NewCartRepository(db)
	cartItemRepo := postgres.NewCartItemRepository(db)
	orderRepo := postgres.NewOrderDetailsRepository(db)
	orderItemRepo := postgres.NewOrderItemRepository(db)
	paymentRepo := postgres.NewPaymentDetailsRepository(db)
	wishlistRepo := postgres.NewWishlistRepository(db)
	wishlistItemRepo := postgres.NewWishListItemRepository(db)
	userRepo := postgres.NewUserRepository(db)

	return services{
		db:         db,
		categories: NewCategoryService(CategoryServiceParams{CategoryRepo: categoryRepo, Logger: logger}),
		subs:       NewSubCategoryService(SubCategoryServiceParams{SubCategoryRepo: subRepo, CategoryRepo: categoryRepo}),
		products:   NewProductService(ProductServiceParams{ProductRepo: productRepo, SubCategoryRepo: subRepo}),
		attributes: NewProductAttributeService(ProductAttributeServiceParams{
			AttributeRepo: attrRepo,
			SkuRepo:       skuRepo,
			Logger:        logger,
		}),
		skus: NewProductSkuService(ProductSkuServiceParams{
			SkuRepo:       skuRepo,
			ProductRepo:   productRepo,
			AttributeRepo: attrRepo,
			Logger:        logger,
		}),
		carts: NewCartService(CartServiceParams{
			TxManager: txManager,
			CartRepo:  cartRepo,
			ItemRepo:  cartItemRepo,
			SkuRepo:   skuRepo,
			Logger:    logger,
		}),
		cartItems: NewCartItemService(cartItemRepo),
		orders: NewOrderService(OrderServiceParams{
			TxManager:   txManager,
			OrderRepo:   orderRepo,
			ItemRepo:    orderItemRepo,
			PaymentRepo: paymentRepo,
			Logger:      logger,
		}),
		orderItems: NewOrderItemService(OrderItemServiceParams{ItemRepo: orderItemRepo, OrderRepo: orderRepo}),
		payments: NewPaymentService(PaymentServiceParams{
			PaymentRepo: paymentRepo,
			OrderRepo:   orderRepo,
			Logger:      logger,
		}),
		wishlists: NewWishlistService(WishlistServiceParams{
			TxManager:    txManager,
			WishlistRepo: wishlistRepo,
			ItemRepo:     wishlistItemRepo,
			Logger:       logger,
		}),
		reviews: NewReviewService(ReviewServiceParams{
			ReviewRepo:  postgres.NewReviewRepository(db),
			ProductRepo: productRepo,
			UserRepo:    userRepo,
		}),
	}
}

// catalog is a product with one attribute of each type.
type catalog struct {
	product *entity.Product
	size    *entity.ProductAttribute
	color   *entity.ProductAttribute
	brand   *entity.ProductAttribute
}

func (s services) seedCatalog(t *testing.T) catalog {
	t.Helper()
	ctx := context.Background()

	category, err := s.categories.Create(ctx, entity.CategoryParams{Name: "Art", Description: "Category for Art products"})
	require.NoError(t, err)
	sub, err := s.subs.Create(ctx, entity.SubCategoryParams{CategoryID: category.ID, Name: "Easels", Description: "Easels"})
	require.NoError(t, err)
	product, err := s.products.Create(ctx, entity.ProductParams{
		Name:           "Studio easel",
		Description:    "Beech wood studio easel",
		Summary:        "Easel",
		Cover:          "easel.png",
		SubCategoryIDs: []uuid.UUID{sub.ID},
	})
	require.NoError(t, err)

	attr := func(attrType entity.AttributeType, value string) *entity.ProductAttribute {
		a, err := s.attributes.Create(ctx, entity.ProductAttributeParams{Type: attrType, Value: value})
		require.NoError(t, err)

		return a
	}

	return catalog{
		product: product,
		size:    attr(entity.AttributeSize, "XL"),
		color:   attr(entity.AttributeColor, "Red"),
		brand:   attr(entity.AttributeBrand, "Acme"),
	}
}

func (c catalog) skuInput(code string, price int64) usecase.CreateSkuInput {
	return usecase.CreateSkuInput{
		ProductID:        c.product.ID,
		SizeAttributeID:  c.size.ID,
		ColorAttributeID: c.color.ID,
		BrandAttributeID: c.brand.ID,
		Sku:              code,
		Price:            decimal.NewFromInt(price),
		Quantity:         10,
	}
}

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)

	return &d
}
