package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"vitrine_back_end/internal/handlers/admin"
	"vitrine_back_end/internal/handlers/product"
	"vitrine_back_end/internal/handlers/user"
	"vitrine_back_end/internal/middleware"
	"vitrine_back_end/internal/store"
)

// RegisterRoutes branche la couche de présentation sur le store injecté.
func RegisterRoutes(r *gin.Engine, s *store.Store) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := user.NewAuthHandler(s)
	cartHandler := user.NewCartHandler(s)
	wishlistHandler := user.NewWishlistHandler(s)
	orderHandler := user.NewOrderHandler(s)
	syncHandler := user.NewSyncHandler(s)
	productHandler := product.NewHandler(s)
	adminHandler := admin.NewHandler(s)

	api := r.Group("/api")

	// Public
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/register", authHandler.Register)
	api.GET("/products", productHandler.GetProducts)
	api.GET("/products/:id", productHandler.GetProduct)
	api.GET("/categories", productHandler.GetCategories)
	api.GET("/store/ws", syncHandler.StateWebSocket)

	// Session requise
	auth := api.Group("", middleware.AuthRequired())
	auth.POST("/auth/logout", authHandler.Logout)
	auth.PUT("/auth/profile", authHandler.UpdateProfile)

	auth.GET("/cart", cartHandler.GetCart)
	auth.POST("/cart/add", cartHandler.AddToCart)
	auth.PUT("/cart/:productId", cartHandler.UpdateQuantity)
	auth.DELETE("/cart/:productId", cartHandler.RemoveFromCart)
	auth.DELETE("/cart", cartHandler.ClearCart)

	auth.GET("/wishlist", wishlistHandler.GetWishlist)
	auth.POST("/wishlist/add", wishlistHandler.AddToWishlist)
	auth.DELETE("/wishlist/:productId", wishlistHandler.RemoveFromWishlist)

	auth.POST("/orders", orderHandler.CreateOrder)
	auth.GET("/orders", orderHandler.GetOrders)

	// Admin uniquement
	adm := api.Group("/admin", middleware.AuthRequired(), middleware.RequireAdmin)
	adm.POST("/products", adminHandler.CreateProduct)
	adm.PUT("/products/:id", adminHandler.UpdateProduct)
	adm.DELETE("/products/:id", adminHandler.DeleteProduct)
	adm.GET("/users", adminHandler.GetUsers)
}
