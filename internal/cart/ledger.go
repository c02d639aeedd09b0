package cart

import (
	"github.com/shopspring/decimal"

	"silzey-pos/internal/domain"
)

// Ledger is the cart: at most one line per product id, kept in insertion order.
// Quantities are always at least one; a line that would drop below one is removed.
type Ledger struct {
	lines []domain.CartLine
}

func New() *Ledger {
	return &Ledger{}
}

// Add puts one unit of product in the cart, creating the line on first add.
// The product fields are snapshotted on creation.
func (l *Ledger) Add(product domain.Product) domain.CartLine {
	if i := l.index(product.ID); i >= 0 {
		l.lines[i].Quantity++
		return l.lines[i]
	}
	line := domain.CartLine{Product: product, Quantity: 1}
	l.lines = append(l.lines, line)
	return line
}

// Remove deletes the line for productID regardless of quantity. Unknown ids are ignored.
func (l *Ledger) Remove(productID string) bool {
	i := l.index(productID)
	if i < 0 {
		return false
	}
	l.lines = append(l.lines[:i:i], l.lines[i+1:]...)
	return true
}

// AdjustQuantity moves a line's quantity by delta, clamped at one. A change
// that would leave the line at zero or below removes it instead.
// It reports the resulting quantity, zero when the line is gone.
func (l *Ledger) AdjustQuantity(productID string, delta int) int {
	i := l.index(productID)
	if i < 0 {
		return 0
	}
	next := l.lines[i].Quantity + delta
	if next <= 0 {
		l.Remove(productID)
		return 0
	}
	l.lines[i].Quantity = max(1, next)
	return l.lines[i].Quantity
}

// Total is the sum of price times quantity, rounded to cents.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range l.lines {
		total = total.Add(line.Subtotal())
	}
	return total.Round(2)
}

// TotalString is Total formatted with exactly two decimals; "0.00" when empty.
func (l *Ledger) TotalString() string {
	return l.Total().StringFixed(2)
}

// ItemCount is the sum of all quantities.
func (l *Ledger) ItemCount() int {
	count := 0
	for _, line := range l.lines {
		count += line.Quantity
	}
	return count
}

// Lines returns a copy of the cart lines in insertion order.
func (l *Ledger) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *Ledger) Len() int { return len(l.lines) }

func (l *Ledger) IsEmpty() bool { return len(l.lines) == 0 }

func (l *Ledger) Contains(productID string) bool {
	return l.index(productID) >= 0
}

// Quantity returns the quantity for productID, zero when absent.
func (l *Ledger) Quantity(productID string) int {
	if i := l.index(productID); i >= 0 {
		return l.lines[i].Quantity
	}
	return 0
}

func (l *Ledger) Clear() {
	l.lines = nil
}

func (l *Ledger) index(productID string) int {
	for i, line := range l.lines {
		if line.ID == productID {
			return i
		}
	}
	return -1
}
