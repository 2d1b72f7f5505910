package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/rafiul1009/minicart/controllers/user"
	"github.com/rafiul1009/minicart/middleware"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", userControllers.Register(db))
		authGroup.POST("/login", userControllers.Login(db))
		authGroup.GET("/logout", userControllers.Logout())

		me := authGroup.Group("/me")
		me.Use(middleware.ValidateToken)
		{
			me.GET("/", userControllers.GetUserDetails(db))
			me.GET("/orders", userControllers.GetUserOrders(db))
		}
	}
}
