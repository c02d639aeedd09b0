// Package session owns the single mutable point-of-sale state: the screen,
// the catalog position, the cart and the checkout flow.
package session

import (
	"silzey-pos/internal/cart"
	"silzey-pos/internal/catalog"
	"silzey-pos/internal/checkout"
	"silzey-pos/internal/domain"
)

// Session is the state of one clerk interaction. It is not safe for
// concurrent use; Runtime serializes access to it.
type Session struct {
	Screen   domain.Screen
	Browse   *catalog.Browse
	Cart     *cart.Ledger
	Checkout *checkout.Flow
	LastSale *domain.Sale

	gen      catalog.Generator
	pageSize int
}

// New returns a session on the splash screen.
func New(gen catalog.Generator, pageSize int) *Session {
	s := &Session{gen: gen, pageSize: pageSize}
	s.reset()
	s.Screen = domain.ScreenSplash
	return s
}

// Reset discards all state and goes straight to a fresh browsing screen.
func (s *Session) Reset() {
	s.reset()
	s.Screen = domain.ScreenBrowsing
}

func (s *Session) reset() {
	s.Browse = catalog.NewBrowse(s.gen, s.pageSize)
	s.Cart = cart.New()
	s.Checkout = checkout.New()
	s.LastSale = nil
}

// LeaveSplash moves from the splash screen to browsing.
func (s *Session) LeaveSplash() bool {
	if s.Screen != domain.ScreenSplash {
		return false
	}
	s.Screen = domain.ScreenBrowsing
	return true
}

func (s *Session) browsing() error {
	if s.Screen != domain.ScreenBrowsing {
		return domain.ErrNotBrowsing
	}
	return nil
}

func (s *Session) VisibleProducts() (catalog.Page, error) {
	return s.Browse.Visible()
}

func (s *Session) SetCategory(category string) error {
	if err := s.browsing(); err != nil {
		return err
	}
	return s.Browse.SetCategory(category)
}

func (s *Session) SetTagFilter(tag string) error {
	if err := s.browsing(); err != nil {
		return err
	}
	s.Browse.SetTag(tag)
	return nil
}

func (s *Session) SetSearchTerm(term string) error {
	if err := s.browsing(); err != nil {
		return err
	}
	s.Browse.SetSearch(term)
	return nil
}

func (s *Session) SetSortOption(opt catalog.SortOption) error {
	if err := s.browsing(); err != nil {
		return err
	}
	s.Browse.SetSort(opt)
	return nil
}

func (s *Session) LoadMore() error {
	if err := s.browsing(); err != nil {
		return err
	}
	s.Browse.LoadMore()
	return nil
}

func (s *Session) SelectProduct(productID string) (domain.Product, error) {
	if err := s.browsing(); err != nil {
		return domain.Product{}, err
	}
	return s.Browse.Select(productID)
}

func (s *Session) ClearSelection() error {
	if err := s.browsing(); err != nil {
		return err
	}
	s.Browse.ClearSelection()
	return nil
}

// AddToCart adds one unit of a catalog product and closes its detail card.
func (s *Session) AddToCart(productID string) (domain.CartLine, error) {
	if err := s.browsing(); err != nil {
		return domain.CartLine{}, err
	}
	p, err := s.Browse.Lookup(productID)
	if err != nil {
		return domain.CartLine{}, err
	}
	line := s.Cart.Add(p)
	s.Browse.ClearSelection()
	return line, nil
}

func (s *Session) RemoveFromCart(productID string) error {
	if err := s.browsing(); err != nil {
		return err
	}
	s.Cart.Remove(productID)
	return nil
}

func (s *Session) AdjustQuantity(productID string, delta int) (int, error) {
	if err := s.browsing(); err != nil {
		return 0, err
	}
	return s.Cart.AdjustQuantity(productID, delta), nil
}

func (s *Session) CartTotal() string { return s.Cart.TotalString() }

func (s *Session) CartItemCount() int { return s.Cart.ItemCount() }

func (s *Session) OpenCart() error {
	if err := s.browsing(); err != nil {
		return err
	}
	s.Checkout.OpenCart()
	return nil
}

func (s *Session) CloseCart() error {
	if err := s.browsing(); err != nil {
		return err
	}
	s.Checkout.CloseCart()
	return nil
}

func (s *Session) ProceedToCheckout() error {
	if err := s.browsing(); err != nil {
		return err
	}
	return s.Checkout.ProceedToCheckout(s.Cart)
}

func (s *Session) UpdateDraft(draft domain.CheckoutDraft) error {
	if err := s.browsing(); err != nil {
		return err
	}
	s.Checkout.UpdateDraft(draft)
	return nil
}

func (s *Session) CancelCheckout() error {
	if err := s.browsing(); err != nil {
		return err
	}
	s.Checkout.CancelCheckout()
	return nil
}

// FinalizeSale closes the sale and switches to the thank-you screen.
func (s *Session) FinalizeSale(draft domain.CheckoutDraft) (domain.Sale, error) {
	if err := s.browsing(); err != nil {
		return domain.Sale{}, err
	}
	sale, err := s.Checkout.FinalizeSale(s.Cart, draft)
	if err != nil {
		return domain.Sale{}, err
	}
	s.LastSale = &sale
	s.Screen = domain.ScreenThankYou
	return sale, nil
}
