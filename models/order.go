package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint            `gorm:"not null;index" json:"userId"`
	Ref       string          `gorm:"uniqueIndex;not null" json:"ref"`
	Total     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total"`
	Items     []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderItems"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// OrderItem is a purchase-time snapshot. Product and category fields are
// copied at checkout so later catalog edits or deletes never change a
// historical order. Price is the line total, ProductPrice the unit price.
type OrderItem struct {
	ID                 uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID            uint            `gorm:"not null;index" json:"orderId"`
	ProductID          uint            `gorm:"not null" json:"productId"`
	Quantity           int             `gorm:"not null" json:"quantity"`
	Price              decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	ProductName        string          `gorm:"not null" json:"productName"`
	ProductDescription string          `gorm:"type:text" json:"productDescription"`
	ProductPrice       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"productPrice"`
	CategoryID         uint            `json:"categoryId"`
	CategoryName       string          `json:"categoryName"`
	CreatedAt          time.Time       `json:"created_at"`
}
