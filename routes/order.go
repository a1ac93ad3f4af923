package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/amineammari/easyshop-api/controllers/order"
	"github.com/amineammari/easyshop-api/middleware"
)

// SetupOrderRoutes registers the "/orders/*" endpoints. Requires JWT middleware.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.RequireAuth)
	{
		// Convert the caller's cart into an order
		orders.POST("", orderControllers.CreateOrder(db))

		// Fetch the caller's orders, newest first
		orders.GET("", orderControllers.GetUserOrders(db))

		// Fetch one order (owner only)
		orders.GET("/:id", orderControllers.GetOrderByID(db))
	}
}
