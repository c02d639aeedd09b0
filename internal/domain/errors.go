package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrUnknownCategory is returned for categories outside Categories.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrEmptyCart is returned when checkout is attempted with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNotBrowsing is returned for clerk actions while the splash or thank-you screen is showing.
	ErrNotBrowsing = errors.New("session is not browsing")
	// ErrCheckoutNotOpen is returned when a sale is finalized outside the checkout form.
	ErrCheckoutNotOpen = errors.New("checkout is not open")
	// ErrClosed is returned once the session has been torn down.
	ErrClosed = errors.New("session closed")
)

// ValidationError lists the customer fields missing at finalization.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
