package checkout

import (
	"time"

	"github.com/google/uuid"

	"silzey-pos/internal/cart"
	"silzey-pos/internal/domain"
)

const (
	MessageEmptyCart     = "Your cart is empty. Please add items before checking out."
	MessageMissingFields = "Please fill in all customer information fields."
)

// Flow gates cart -> checkout form -> finalized sale. It owns the open
// overlay, the user-facing message, the customer draft and rewards points.
// Failed transitions only set the message.
type Flow struct {
	overlay       domain.Overlay
	message       string
	draft         domain.CheckoutDraft
	rewardsPoints int64

	now   func() time.Time
	newID func() string
}

func New() *Flow {
	return &Flow{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (f *Flow) Overlay() domain.Overlay { return f.overlay }

func (f *Flow) Message() string { return f.message }

func (f *Flow) Draft() domain.CheckoutDraft { return f.draft }

func (f *Flow) RewardsPoints() int64 { return f.rewardsPoints }

// OpenCart shows the cart overlay.
func (f *Flow) OpenCart() {
	f.overlay = domain.OverlayCart
}

// CloseCart hides the cart overlay.
func (f *Flow) CloseCart() {
	if f.overlay == domain.OverlayCart {
		f.overlay = domain.OverlayNone
	}
}

// ProceedToCheckout opens the checkout form when the ledger has lines.
func (f *Flow) ProceedToCheckout(ledger *cart.Ledger) error {
	if ledger.IsEmpty() {
		f.message = MessageEmptyCart
		return domain.ErrEmptyCart
	}
	f.message = ""
	f.overlay = domain.OverlayCheckout
	return nil
}

// UpdateDraft stores the customer fields as typed so far.
func (f *Flow) UpdateDraft(draft domain.CheckoutDraft) {
	f.draft = draft
}

// CancelCheckout returns to the cart with the ledger untouched.
func (f *Flow) CancelCheckout() {
	if f.overlay == domain.OverlayCheckout {
		f.overlay = domain.OverlayCart
	}
	f.message = ""
}

// FinalizeSale validates the draft and closes the sale. It only runs from the
// open checkout form; elsewhere it fails without touching any state. On
// success points are credited as floor(total), the ledger and draft are
// cleared and the overlay closes.
// The credited points are reported on the returned Sale and the balance is
// then reset to zero, so every sale starts a fresh customer.
func (f *Flow) FinalizeSale(ledger *cart.Ledger, draft domain.CheckoutDraft) (domain.Sale, error) {
	if f.overlay != domain.OverlayCheckout {
		return domain.Sale{}, domain.ErrCheckoutNotOpen
	}
	if missing := draft.MissingFields(); len(missing) > 0 {
		f.message = MessageMissingFields
		return domain.Sale{}, &domain.ValidationError{Fields: missing}
	}

	total := ledger.Total()
	earned := PointsFor(total)
	f.rewardsPoints += earned

	sale := domain.Sale{
		ID:            f.newID(),
		Customer:      draft,
		Lines:         ledger.Lines(),
		Total:         total,
		PointsEarned:  earned,
		RewardsPoints: f.rewardsPoints,
		FinalizedAt:   f.now().UTC(),
	}

	ledger.Clear()
	f.draft = domain.CheckoutDraft{}
	f.overlay = domain.OverlayNone
	f.message = ""
	// Known quirk kept from the register this replaces: points do not carry over.
	f.rewardsPoints = 0
	return sale, nil
}
