package captable

import (
	"iter"
	"slices"
)

// Ledger represents a list of purchases.
//
// In a Ledger purchases are always in chronological order. Purchases made
// on the same day keep the order they were appended in.
type Ledger struct {
	purchases []Purchase
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{purchases: make([]Purchase, 0)}
}

// Append appends purchases to this ledger and maintains the chronological order.
func (l *Ledger) Append(ps ...Purchase) {
	l.purchases = append(l.purchases, ps...)
	l.stableSort()
}

// Len returns the number of purchases in the ledger.
func (l *Ledger) Len() int { return len(l.purchases) }

// Purchases iterates over all purchases in chronological order.
func (l *Ledger) Purchases() iter.Seq[Purchase] {
	return slices.Values(l.purchases)
}

// List returns a copy of all purchases in chronological order.
func (l *Ledger) List() []Purchase { return slices.Clone(l.purchases) }

// Investors returns the sorted list of investors that purchased shares on or before on.
func (l *Ledger) Investors(on Date) []string {
	var investors []string
	for _, p := range l.purchases {
		if OnOrBefore(p, on) {
			investors = append(investors, p.Investor)
		}
	}
	slices.Sort(investors)
	return slices.Compact(investors)
}

// stableSort sorts the ledger by purchase date. The sort is stable, meaning
// purchases on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	slices.SortStableFunc(l.purchases, func(a, b Purchase) int {
		return a.Date.Compare(b.Date)
	})
}
