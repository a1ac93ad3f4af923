package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"message":   "EasyShop API is running",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Product catalog (public reads, authenticated writes)
	SetupProductRoutes(r, db)

	// Cart routes (JWT-protected)
	SetupCartRoutes(r, db)

	// Order routes (JWT-protected)
	SetupOrderRoutes(r, db)
}
