package session

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"silzey-pos/internal/catalog"
	"silzey-pos/internal/domain"
)

type manualTimer struct {
	s       *manualScheduler
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// manualScheduler fires timers only when Advance moves its clock past them.
type manualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

func (s *manualScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{s: s, at: s.now + d, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (s *manualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*manualTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.at <= s.now {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()
	for _, t := range due {
		t.fn()
	}
}

func (s *manualScheduler) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// pricedGenerator pins the price of selected products.
type pricedGenerator struct {
	src    *catalog.Source
	prices map[string]decimal.Decimal
}

func newPricedGenerator(prices map[string]string) *pricedGenerator {
	g := &pricedGenerator{src: catalog.NewSource(11), prices: map[string]decimal.Decimal{}}
	for id, price := range prices {
		g.prices[id] = decimal.RequireFromString(price)
	}
	return g
}

func (g *pricedGenerator) Generate(category string) ([]domain.Product, error) {
	products, err := g.src.Generate(category)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if price, ok := g.prices[products[i].ID]; ok {
			products[i].Price = price
		}
	}
	return products, nil
}

type captureRecorder struct {
	mu    sync.Mutex
	sales []domain.Sale
	err   error
}

func (c *captureRecorder) Record(_ context.Context, sale domain.Sale) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sales = append(c.sales, sale)
	return c.err
}

func (c *captureRecorder) recorded() []domain.Sale {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Sale(nil), c.sales...)
}

func fullDraft() domain.CheckoutDraft {
	return domain.CheckoutDraft{FirstName: "Ada", LastName: "Lovelace", DateOfBirth: "1990-12-10", PhoneNumber: "555-0100"}
}
