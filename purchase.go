package captable

import (
	"errors"
	"fmt"
)

// Purchase records an investor buying shares for cash on a given day.
type Purchase struct {
	Date     Date   `json:"date"`     // Date is the day of the investment.
	Investor string `json:"investor"` // Investor identifies the buyer. It is matched exactly.
	Shares   Shares `json:"shares"`   // Shares is the number of shares purchased.
	Cash     Cash   `json:"cash"`     // Cash is the total amount paid for the shares.
}

// NewPurchase creates a new Purchase.
func NewPurchase(day Date, investor string, shares Shares, cash Cash) Purchase {
	return Purchase{Date: day, Investor: investor, Shares: shares, Cash: cash}
}

// OnOrBefore reports whether p was made on or before cutoff.
func OnOrBefore(p Purchase, cutoff Date) bool {
	return !p.Date.After(cutoff)
}

// Equal reports whether both purchases are identical.
func (p Purchase) Equal(o Purchase) bool {
	return p.Date == o.Date && p.Investor == o.Investor && p.Shares == o.Shares && p.Cash.Equal(o.Cash)
}

// Validate checks the purchase fields. The date must be set, the investor
// named and the cash amount not negative. Zero shares or zero cash are
// accepted.
func (p Purchase) Validate() error {
	if p.Date.IsZero() {
		return errors.New("purchase date is missing")
	}
	if p.Investor == "" {
		return errors.New("purchase investor is missing")
	}
	if p.Cash.IsNegative() {
		return fmt.Errorf("purchase cash amount must not be negative, got %s", p.Cash)
	}
	return nil
}

// MarshalJSON writes the purchase fields in their canonical order.
func (p Purchase) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", p.Date)
	w.Append("investor", p.Investor)
	w.Append("shares", p.Shares)
	w.Append("cash", p.Cash)
	return w.MarshalJSON()
}
