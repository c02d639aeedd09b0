package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutDraft holds the customer fields typed into the checkout form.
type CheckoutDraft struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	PhoneNumber string `json:"phoneNumber"`
}

// MissingFields returns the blank required fields in form order.
func (d CheckoutDraft) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(d.FirstName) == "" {
		missing = append(missing, "firstName")
	}
	if strings.TrimSpace(d.LastName) == "" {
		missing = append(missing, "lastName")
	}
	if strings.TrimSpace(d.DateOfBirth) == "" {
		missing = append(missing, "dateOfBirth")
	}
	if strings.TrimSpace(d.PhoneNumber) == "" {
		missing = append(missing, "phoneNumber")
	}
	return missing
}

// IsZero reports whether no field has been entered.
func (d CheckoutDraft) IsZero() bool {
	return d == CheckoutDraft{}
}

// Sale is the receipt of a finalized checkout.
type Sale struct {
	ID            string          `json:"id"`
	Customer      CheckoutDraft   `json:"customer"`
	Lines         []CartLine      `json:"lines"`
	Total         decimal.Decimal `json:"total"`
	PointsEarned  int64           `json:"pointsEarned"`
	RewardsPoints int64           `json:"rewardsPoints"`
	FinalizedAt   time.Time       `json:"finalizedAt"`
}
