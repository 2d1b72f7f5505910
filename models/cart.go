package models

import "github.com/shopspring/decimal"

// CartItem is a cart entry resolved against the catalog: the current product
// row plus the requested quantity and the resulting line total.
type CartItem struct {
	Product  Product         `json:"product"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

type CartSummary struct {
	Items []CartItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}
