package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rafiul1009/minicart/session"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, carts session.Store) {
	SetupAuthRoutes(r, db)
	SetupCatalogRoutes(r, db)
	SetupCartRoutes(r, db, carts)
	SetupCheckoutRoutes(r, db, carts)
}
