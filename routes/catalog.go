package routes

import (
	"github.com/gin-gonic/gin"
	productControllers "github.com/rafiul1009/minicart/controllers/product"
	"github.com/rafiul1009/minicart/middleware"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers product and category endpoints. Reads are
// public; writes and the export require an admin.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("/", productControllers.GetProducts(db))

		adminProducts := products.Group("")
		adminProducts.Use(middleware.ValidateToken, middleware.RequireAdmin(db))
		{
			adminProducts.GET("/export", productControllers.ExportProductsToExcel(db))
			adminProducts.POST("/", productControllers.CreateProduct(db))
			adminProducts.PUT("/:id", productControllers.UpdateProduct(db))
			adminProducts.DELETE("/:id", productControllers.DeleteProduct(db))
		}

		products.GET("/:id", productControllers.GetProductByID(db))
	}

	categories := r.Group("/categories")
	{
		categories.GET("/", productControllers.GetAllCategories(db))

		adminCategories := categories.Group("")
		adminCategories.Use(middleware.ValidateToken, middleware.RequireAdmin(db))
		{
			adminCategories.POST("/", productControllers.CreateCategory(db))
			adminCategories.PUT("/:id", productControllers.UpdateCategory(db))
			adminCategories.DELETE("/:id", productControllers.DeleteCategory(db))
		}
	}
}
