package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/rafiul1009/minicart/controllers/order"
	"github.com/rafiul1009/minicart/middleware"
	"github.com/rafiul1009/minicart/session"
	"gorm.io/gorm"
)

// SetupCheckoutRoutes registers checkout plus the admin order feed.
func SetupCheckoutRoutes(r *gin.Engine, db *gorm.DB, carts session.Store) {
	checkout := r.Group("/checkout")
	checkout.Use(middleware.ValidateToken)
	{
		checkout.POST("/", orderControllers.CheckoutHandler(db, carts))
	}

	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken, middleware.RequireAdmin(db))
	{
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)
	}
}
