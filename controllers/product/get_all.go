package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rafiul1009/minicart/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const pageSize = 10

// GET /products
// Filters combine independently: categoryId, minPrice/maxPrice (inclusive),
// minRating (inclusive), search (substring on name). Pages are 1-indexed and
// fixed at 10 items, newest first.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := c.Query("categoryId")
		minPriceStr := c.Query("minPrice")
		maxPriceStr := c.Query("maxPrice")
		minRatingStr := c.Query("minRating")
		search := c.Query("search")
		pageStr := c.DefaultQuery("page", "1")

		query := db.Model(&models.Product{})

		if categoryID != "" {
			cid, err := strconv.ParseUint(categoryID, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid categoryId"})
				return
			}
			query = query.Where("category_id = ?", uint(cid))
		}

		if minPriceStr != "" {
			minPrice, err := decimal.NewFromString(minPriceStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid minPrice"})
				return
			}
			query = query.Where("price >= ?", minPrice)
		}
		if maxPriceStr != "" {
			maxPrice, err := decimal.NewFromString(maxPriceStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid maxPrice"})
				return
			}
			query = query.Where("price <= ?", maxPrice)
		}

		if minRatingStr != "" {
			minRating, err := decimal.NewFromString(minRatingStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid minRating"})
				return
			}
			query = query.Where("rating >= ?", minRating)
		}

		if search != "" {
			query = query.Where("name LIKE ?", "%"+search+"%")
		}

		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid page"})
			return
		}

		var count int64
		if err := query.Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		pages := int(count) / pageSize
		if int(count)%pageSize > 0 {
			pages++
		}

		var products []models.Product
		if err := query.
			Preload("Category").
			Order("created_at DESC").
			Limit(pageSize).
			Offset((page - 1) * pageSize).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "All Products",
			"data": gin.H{
				"count":       count,
				"pages":       pages,
				"currentPage": page,
				"products":    products,
			},
		})
	}
}
