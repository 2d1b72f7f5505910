package cartControllers

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/rafiul1009/minicart/models"
	"github.com/rafiul1009/minicart/session"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartItemInput struct {
	ProductID uint `json:"productId"`
	Quantity  *int `json:"quantity"`
}

// POST /cart/add
// Sets the absolute quantity for (user, product): zero removes the entry,
// negatives are rejected, positives replace whatever was there.
func UpdateCartItem(db *gorm.DB, carts session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
			return
		}
		if input.ProductID == 0 || input.Quantity == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Product ID and quantity are required"})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			}
			return
		}

		quantity := *input.Quantity
		switch {
		case quantity < 0:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity cannot be negative"})
			return
		case quantity == 0:
			if err := carts.Delete(userID, input.ProductID); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
				return
			}
			summary, err := BuildCartSummary(db, carts, userID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"message": "Item removed from cart",
				"data":    summary,
			})
			return
		}

		if err := carts.Set(userID, input.ProductID, quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		summary, err := BuildCartSummary(db, carts, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Cart updated successfully",
			"data":    summary,
		})
	}
}

// GET /cart
func GetUserCart(db *gorm.DB, carts session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		summary, err := BuildCartSummary(db, carts, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Cart retrieved successfully",
			"data":    summary,
		})
	}
}

// DELETE /cart/clear
func ClearUserCart(carts session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		if err := carts.ClearUser(userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Cart cleared successfully",
			"data":    nil,
		})
	}
}

// BuildCartSummary resolves a user's cart entries against the catalog.
// Entries whose product has been deleted are skipped, so the cart display
// self-heals instead of failing.
func BuildCartSummary(db *gorm.DB, carts session.Store, userID uint) (models.CartSummary, error) {
	summary := models.CartSummary{
		Items: []models.CartItem{},
		Total: decimal.Zero,
	}

	entries, err := carts.Entries(userID)
	if err != nil {
		return summary, err
	}

	productIDs := make([]uint, 0, len(entries))
	for productID := range entries {
		productIDs = append(productIDs, productID)
	}
	sort.Slice(productIDs, func(i, j int) bool { return productIDs[i] < productIDs[j] })

	for _, productID := range productIDs {
		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return summary, err
		}

		quantity := entries[productID]
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(quantity)))
		summary.Items = append(summary.Items, models.CartItem{
			Product:  product,
			Quantity: quantity,
			Total:    lineTotal,
		})
		summary.Total = summary.Total.Add(lineTotal)
	}

	return summary, nil
}
