package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/amineammari/easyshop-api/controllers/product"
	"github.com/amineammari/easyshop-api/middleware"
)

// SetupProductRoutes registers the "/products/*" endpoints. Reads are
// public; catalog writes require a logged-in user.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productControllers.GetProducts(db))
		products.GET("/:id", productControllers.GetProductByID(db))

		products.POST("", middleware.RequireAuth, productControllers.CreateProduct(db))
		products.PUT("/:id", middleware.RequireAuth, productControllers.UpdateProduct(db))
		products.DELETE("/:id", middleware.RequireAuth, productControllers.DeleteProduct(db))
	}
}
