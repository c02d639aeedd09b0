package domain

import "github.com/shopspring/decimal"

// CartLine is a product snapshot taken at add time plus the quantity in the cart.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal is price times quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
