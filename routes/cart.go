package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/rafiul1009/minicart/controllers/cart"
	"github.com/rafiul1009/minicart/middleware"
	"github.com/rafiul1009/minicart/session"
	"gorm.io/gorm"
)

// SetupCartRoutes registers all "/cart/*" endpoints. Requires JWT middleware.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, carts session.Store) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("/", cartControllers.GetUserCart(db, carts))
		cartGroup.POST("/add", cartControllers.UpdateCartItem(db, carts))
		cartGroup.DELETE("/clear", cartControllers.ClearUserCart(carts))
	}
}
