package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/amineammari/easyshop-api/controllers/auth"
)

// SetupAuthRoutes registers the "/auth/*" endpoints. All public.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(db))
		authGroup.POST("/login", authControllers.Login(db))
		authGroup.POST("/logout", authControllers.Logout())
		authGroup.POST("/reset-password", authControllers.ResetPassword(db))
	}
}
