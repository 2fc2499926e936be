// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	WishlistHandler *handler.WishlistHandler
	ReviewHandler   *handler.ReviewHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	user     *handler.UserHandler
	category *handler.CategoryHandler
	product  *handler.ProductHandler
	cart     *handler.CartHandler
	order    *handler.OrderHandler
	wishlist *handler.WishlistHandler
	review   *handler.ReviewHandler
	auth     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		user:     params.UserHandler,
		category: params.CategoryHandler,
		product:  params.ProductHandler,
		cart:     params.CartHandler,
		order:    params.OrderHandler,
		wishlist: params.WishlistHandler,
		review:   params.ReviewHandler,
		auth:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Catalog reads are public and catalog writes need the admin role; every
// other resource needs an authenticated caller.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	admin := []echo.MiddlewareFunc{r.auth.Authenticate, r.auth.RequireRole(entity.RoleAdmin.String())}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.user.Register)
		authGroup.POST("/login", r.user.Login)
		authGroup.GET("/profile", r.user.GetProfile, r.auth.Authenticate)
		authGroup.PUT("/profile", r.user.UpdateProfile, r.auth.Authenticate)
	}

	categories := e.Group("/categories")
	{
		categories.POST("", r.category.CreateCategory, admin...)
		categories.GET("", r.category.ListCategories)
		categories.GET("/recent", r.category.MostRecentCategory)
		categories.GET("/deleted", r.category.DeletedCategories)
		categories.GET("/search/name/:name", r.category.FindCategoriesByName)
		categories.GET("/search/name-contains/:keyword", r.category.FindCategoriesByNameContaining)
		categories.GET("/search/description-contains/:keyword", r.category.FindCategoriesByDescriptionContaining)
		categories.GET("/search/created-after/:date", r.category.FindCategoriesCreatedAfter)
		categories.GET("/search/created-between", r.category.FindCategoriesCreatedBetween)
		categories.GET("/:id", r.category.GetCategory)
		categories.PUT("/:id", r.category.UpdateCategory, admin...)
		categories.DELETE("/:id", r.category.DeleteCategory, admin...)
		categories.DELETE("/:id/soft", r.category.SoftDeleteCategory, admin...)
	}

	subCategories := e.Group("/subcategories")
	{
		subCategories.POST("", r.category.CreateSubCategory, admin...)
		subCategories.GET("", r.category.ListSubCategories)
		subCategories.GET("/:id", r.category.GetSubCategory)
		subCategories.PUT("/:id", r.category.UpdateSubCategory, admin...)
		subCategories.DELETE("/:id", r.category.DeleteSubCategory, admin...)
	}

	api := e.Group("/api")

	products := api.Group("/products")
	{
		products.POST("", r.product.CreateProduct, admin...)
		products.GET("", r.product.ListProducts)
		products.GET("/:id", r.product.GetProduct)
		products.PUT("/:id", r.product.UpdateProduct, admin...)
		products.DELETE("/:id", r.product.DeleteProduct, admin...)
		products.DELETE("/:id/soft", r.product.SoftDeleteProduct, admin...)
	}

	attributes := api.Group("/product-attributes")
	{
		attributes.POST("", r.product.CreateAttribute, admin...)
		attributes.GET("", r.product.ListAttributes)
		attributes.GET("/:id", r.product.GetAttribute)
		attributes.PUT("/:id", r.product.UpdateAttribute, admin...)
		attributes.DELETE("/:id", r.product.DeleteAttribute, admin...)
	}

	skus := api.Group("/product-skus")
	{
		skus.POST("", r.product.CreateSku, admin...)
		skus.GET("", r.product.ListSkus)
		skus.GET("/sku/:sku", r.product.FindSkuByCode)
		skus.POST("/scan", r.product.ScanSkuLabel)
		skus.GET("/:id", r.product.GetSku)
		skus.GET("/:id/label", r.product.SkuLabel)
		skus.PUT("/:id", r.product.UpdateSku, admin...)
		skus.DELETE("/:id", r.product.DeleteSku, admin...)
		skus.DELETE("/:id/soft", r.product.SoftDeleteSku, admin...)
	}

	carts := e.Group("/carts", r.auth.Authenticate)
	{
		carts.POST("", r.cart.CreateCart)
		carts.GET("", r.cart.ListCarts)
		carts.GET("/:id", r.cart.GetCart)
		carts.PUT("/:id", r.cart.UpdateCart)
		carts.DELETE("/:id", r.cart.DeleteCart)
		carts.POST("/:id/items", r.cart.AddItem)
		carts.GET("/:id/items", r.cart.CartItems)
	}

	cartItems := e.Group("/cart-items", r.auth.Authenticate)
	{
		cartItems.GET("", r.cart.ListItems)
		cartItems.GET("/:id", r.cart.GetItem)
		cartItems.PUT("/:id", r.cart.UpdateItem)
		cartItems.DELETE("/:id", r.cart.DeleteItem)
	}

	orders := e.Group("/order-details", r.auth.Authenticate)
	{
		orders.POST("", r.order.CreateOrder)
		orders.POST("/place", r.order.PlaceOrder)
		orders.GET("", r.order.ListOrders)
		orders.GET("/user/:userId", r.order.OrdersByUser)
		orders.GET("/user/:userId/ordered-by-created-at-desc", r.order.OrdersByUserNewestFirst)
		orders.GET("/total-greater-than-equal/:total", r.order.OrdersWithTotalAtLeast)
		orders.GET("/created-after/:createdAt", r.order.OrdersCreatedAfter)
		orders.GET("/updated-before/:updatedAt", r.order.OrdersUpdatedBefore)
		orders.GET("/payment/:paymentId", r.order.OrdersByPayment)
		orders.GET("/:id", r.order.GetOrder)
		orders.PUT("/:id", r.order.UpdateOrder)
		orders.DELETE("/:id", r.order.DeleteOrder)
		orders.GET("/:id/items", r.order.OrderItems)
		orders.POST("/:id/payment", r.order.RecordPayment)
		orders.GET("/:id/payment", r.order.OrderPayment)
	}

	orderItems := e.Group("/order-items", r.auth.Authenticate)
	{
		orderItems.POST("", r.order.CreateItem)
		orderItems.GET("", r.order.ListItems)
		orderItems.GET("/:id", r.order.GetItem)
		orderItems.PUT("/:id", r.order.UpdateItem)
		orderItems.DELETE("/:id", r.order.DeleteItem)
	}

	payments := e.Group("/payment-details", r.auth.Authenticate)
	{
		payments.POST("", r.order.CreatePayment)
		payments.GET("", r.order.ListPayments)
		payments.GET("/provider/:provider", r.order.PaymentsByProvider)
		payments.GET("/status/:status", r.order.PaymentsByStatus)
		payments.GET("/created-after", r.order.PaymentsCreatedAfter)
		payments.GET("/created-between", r.order.PaymentsCreatedBetween)
		payments.GET("/count-by-status", r.order.CountPaymentsByStatus)
		payments.GET("/:id", r.order.GetPayment)
		payments.PUT("/:id", r.order.UpdatePayment)
		payments.DELETE("/:id", r.order.DeletePayment)
		payments.DELETE("/order-details/:orderDetailsId", r.order.DeleteOrderPayment)
	}

	wishlists := e.Group("/wishlist", r.auth.Authenticate)
	{
		wishlists.POST("", r.wishlist.Create)
		wishlists.GET("", r.wishlist.List)
		wishlists.GET("/:id", r.wishlist.Get)
		wishlists.PUT("/:id", r.wishlist.Update)
		wishlists.DELETE("/:id", r.wishlist.Delete)
		wishlists.DELETE("/:id/soft", r.wishlist.SoftDelete)
		wishlists.POST("/:id/items", r.wishlist.AddItem)
		wishlists.PUT("/:id/items/:itemId", r.wishlist.UpdateItem)
		wishlists.DELETE("/:id/items/:itemId", r.wishlist.RemoveItem)
	}

	reviews := e.Group("/reviews")
	{
		reviews.POST("", r.review.Create, r.auth.Authenticate)
		reviews.GET("", r.review.List)
		reviews.GET("/rating/:rating", r.review.ByRating)
		reviews.GET("/rating-greater-than/:rating", r.review.RatingAbove)
		reviews.GET("/:id", r.review.Get)
		reviews.PUT("/:id", r.review.Update, r.auth.Authenticate)
		reviews.DELETE("/:id", r.review.Delete, r.auth.Authenticate)
	}
}
