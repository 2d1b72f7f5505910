package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product prices are numeric(10,2) and ratings numeric(2,1); both are carried
// as decimals end to end so totals never pass through floating point.
type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null;index" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null;index" json:"price"`
	Rating      decimal.Decimal `gorm:"type:numeric(2,1);not null;default:0.0;index" json:"rating"`
	CategoryID  uint            `gorm:"not null;index" json:"categoryId"`
	Category    *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	UserID      uint            `gorm:"not null" json:"userId"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
