package orderControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rafiul1009/minicart/models"
	"github.com/rafiul1009/minicart/session"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IdempotencyHeader lets a client retry a checkout safely: the key becomes
// the order ref, and a ref that already exists returns the original order.
const IdempotencyHeader = "Idempotency-Key"

var ErrEmptyCart = errors.New("cart is empty")

type ProductNotFoundError struct {
	ProductID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with ID %d not found", e.ProductID)
}

// Checkout converts the user's cart into a durable order.
//
// Everything between order creation and the total update runs in one
// transaction: any missing product rolls the whole thing back and no order
// or item rows survive. The cart is cleared strictly after commit — a clear
// failure leaves the order placed and is logged, never rolled back.
func Checkout(db *gorm.DB, carts session.Store, userID uint, ref string) (*models.Order, error) {
	if ref != "" {
		var existing models.Order
		err := db.Preload("Items").
			Where("user_id = ? AND ref = ?", userID, ref).
			First(&existing).Error
		if err == nil {
			return &existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	} else {
		ref = uuid.NewString()
	}

	entries, err := carts.Entries(userID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrEmptyCart
	}

	productIDs := make([]uint, 0, len(entries))
	for productID := range entries {
		productIDs = append(productIDs, productID)
	}
	sort.Slice(productIDs, func(i, j int) bool { return productIDs[i] < productIDs[j] })

	var order models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		order = models.Order{
			UserID: userID,
			Ref:    ref,
			Total:  decimal.Zero,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		orderTotal := decimal.Zero
		for _, productID := range productIDs {
			var product models.Product
			if err := tx.First(&product, productID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ProductNotFoundError{ProductID: productID}
				}
				return err
			}

			// A missing category is not an error; the snapshot just
			// records an empty name.
			var categoryName string
			var category models.Category
			if err := tx.First(&category, product.CategoryID).Error; err == nil {
				categoryName = category.Name
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			quantity := entries[productID]
			lineTotal := product.Price.Mul(decimal.NewFromInt(int64(quantity)))
			orderTotal = orderTotal.Add(lineTotal)

			item := models.OrderItem{
				OrderID:            order.ID,
				ProductID:          product.ID,
				Quantity:           quantity,
				Price:              lineTotal,
				ProductName:        product.Name,
				ProductDescription: product.Description,
				ProductPrice:       product.Price,
				CategoryID:         product.CategoryID,
				CategoryName:       categoryName,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		return tx.Model(&order).Update("total", orderTotal).Error
	})
	if err != nil {
		return nil, err
	}

	// Post-commit: the order is already durable, so a clear failure must not
	// fail the checkout. Surface it as its own condition instead.
	if err := carts.ClearUser(userID); err != nil {
		log.Printf("order %d placed but cart clear failed for user %d: %v", order.ID, userID, err)
	}

	var completed models.Order
	if err := db.Preload("Items").First(&completed, order.ID).Error; err != nil {
		return nil, err
	}
	return &completed, nil
}

// POST /checkout
func CheckoutHandler(db *gorm.DB, carts session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		ref := strings.TrimSpace(c.GetHeader(IdempotencyHeader))

		order, err := Checkout(db, carts, userID, ref)
		if err != nil {
			var notFound *ProductNotFoundError
			switch {
			case errors.Is(err, ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Cart is empty"})
			case errors.As(err, &notFound):
				c.JSON(http.StatusNotFound, gin.H{
					"message": fmt.Sprintf("Product with ID %d not found", notFound.ProductID),
				})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			}
			return
		}

		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order created successfully",
			"data":    order,
		})
	}
}
