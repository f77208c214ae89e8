package routes

import (
	"vendora_back_end/internal/config"
	"vendora_back_end/internal/database"
	pa "vendora_back_end/internal/handlers/payement"
	"vendora_back_end/internal/handlers/product"
	"vendora_back_end/internal/handlers/user"
	"vendora_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// Catalogue
	api.GET("/products", product.ProductList)
	api.GET("/products/:slug", product.ProductDetail)
	api.GET("/categories", product.CategoryList)
	api.GET("/categories/:slug", product.CategoryDetail)
	api.GET("/search", product.ProductSearch)

	// Catalogue (admin)
	admin := api.Group("/")
	admin.Use(middleware.AuthRequired(), middleware.RequireAdmin())
	{
		admin.POST("/products", product.CreateProduct)
		admin.PUT("/products/:id", product.UpdateProduct)
		admin.DELETE("/products/:id", product.DeleteProduct)
		admin.POST("/products/:id/image", product.UploadProductImage)
		admin.POST("/categories", product.CreateCategory)
		admin.PUT("/categories/:id", product.UpdateCategory)
		admin.DELETE("/categories/:id", product.DeleteCategory)
	}

	// Panier
	api.POST("/cart/add", user.AddToCart)
	api.PUT("/cart/item", user.UpdateCartItemQuantity)
	api.DELETE("/cart/item/:id", user.DeleteCartItem)
	api.GET("/cart/stat", user.CartStat)
	api.GET("/cart/contains", user.ProductInCart)
	api.GET("/cart/:cart_code", user.GetCart)

	// Avis
	api.POST("/reviews", product.AddReview)
	api.PUT("/reviews/:id", product.UpdateReview)
	api.DELETE("/reviews/:id", product.DeleteReview)

	// Wishlist
	api.POST("/wishlist", user.AddToWishlist)
	api.GET("/wishlist", user.MyWishlists)
	api.GET("/wishlist/contains", user.ProductInWishlist)

	// Utilisateurs / adresses / commandes
	api.POST("/users", middleware.RegisterRateLimit(), user.CreateUser)
	api.GET("/users/exists/:email", user.ExistingUser)
	api.POST("/login", middleware.LoginRateLimit(), user.Login)
	api.POST("/address", user.AddAddress)
	api.GET("/address", user.GetAddress)
	api.GET("/orders", user.GetOrders)

	// Paiement : le secret webhook est injecté à la construction
	payments := pa.NewHandler(database.DB, config.StripeWebhookSecret())
	api.POST("/checkout", payments.CreateCheckoutSession)
	api.POST("/checkout/test", payments.TestOrder)
	api.POST("/stripe/webhook", payments.StripeWebhook)
}
