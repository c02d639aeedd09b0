package domain

import (
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Products are generated once per session and never mutated.
type Product struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Image  string          `json:"image"`
	Price  decimal.Decimal `json:"price"`
	Tag    string          `json:"tag"`
	Rating decimal.Decimal `json:"rating"`
}

// Stars splits a 0-5 rating into full, half and empty stars for display.
func Stars(rating decimal.Decimal) (full int, half bool, empty int) {
	whole := rating.Floor()
	full = int(whole.IntPart())
	if full < 0 {
		full = 0
	}
	if full > 5 {
		full = 5
	}
	half = full < 5 && rating.Sub(whole).GreaterThanOrEqual(decimal.NewFromFloat(0.5))
	empty = 5 - full
	if half {
		empty--
	}
	return full, half, empty
}
