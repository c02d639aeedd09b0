package session

import (
	"silzey-pos/internal/catalog"
	"silzey-pos/internal/domain"
)

// View is a read-only copy of the session for the presentation layer.
type View struct {
	Screen        domain.Screen
	Overlay       domain.Overlay
	Message       string
	RewardsPoints int64
	Category      string
	Query         catalog.Query
	Selected      *domain.Product
	Cart          CartView
	Draft         domain.CheckoutDraft
	LastSale      *domain.Sale
}

type CartView struct {
	Lines     []domain.CartLine
	Total     string
	ItemCount int
}

// Snapshot copies the session into a View.
func (s *Session) Snapshot() View {
	v := View{
		Screen:        s.Screen,
		Overlay:       s.Checkout.Overlay(),
		Message:       s.Checkout.Message(),
		RewardsPoints: s.Checkout.RewardsPoints(),
		Category:      s.Browse.Category(),
		Query:         s.Browse.Query(),
		Cart: CartView{
			Lines:     s.Cart.Lines(),
			Total:     s.Cart.TotalString(),
			ItemCount: s.Cart.ItemCount(),
		},
		Draft: s.Checkout.Draft(),
	}
	if p, ok := s.Browse.Selected(); ok {
		v.Selected = &p
	}
	if s.LastSale != nil {
		sale := *s.LastSale
		sale.Lines = append([]domain.CartLine(nil), s.LastSale.Lines...)
		v.LastSale = &sale
	}
	return v
}
