package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/amineammari/easyshop-api/controllers/cart"
	"github.com/amineammari/easyshop-api/middleware"
)

// SetupCartRoutes registers the "/cart/*" endpoints. Requires JWT middleware.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/cart")
	cart.Use(middleware.RequireAuth)
	{
		cart.GET("", cartControllers.GetCart(db))
		cart.POST("/add", cartControllers.AddToCart(db))
		cart.PUT("/update", cartControllers.UpdateCartItem(db))
		cart.DELETE("/remove/:productId", cartControllers.RemoveFromCart(db))
	}
}
