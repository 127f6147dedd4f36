package captable

import "fmt"

// tally accumulates grand totals and per-investor subtotals.
//
// Entries are kept in first-seen order and indexed by investor, so that the
// assembly never depends on map iteration order.
type tally struct {
	shares  Shares
	cash    Cash
	index   map[string]int // position of each investor in entries
	entries []Ownership
}

func newTally() *tally {
	return &tally{index: make(map[string]int)}
}

// accumulate adds a purchase to the totals and to its investor's subtotal.
// The caller is responsible for filtering by date.
func (t *tally) accumulate(p Purchase) error {
	if err := t.add(p.Investor, p.Shares, p.Cash); err != nil {
		return fmt.Errorf("purchase by %q on %s: %w", p.Investor, p.Date, err)
	}
	return nil
}

// merge adds every subtotal of o into t, in o's first-seen order.
func (t *tally) merge(o *tally) error {
	for _, e := range o.entries {
		if err := t.add(e.Investor, e.Shares, e.Cash); err != nil {
			return fmt.Errorf("merging %q: %w", e.Investor, err)
		}
	}
	return nil
}

// add is atomic: on overflow, t is left unchanged.
func (t *tally) add(investor string, shares Shares, cash Cash) error {
	total, ok := t.shares.add(shares)
	if !ok {
		return fmt.Errorf("%w: %s + %s shares", ErrAccumulationOverflow, t.shares, shares)
	}
	i, seen := t.index[investor]
	if !seen {
		i = len(t.entries)
		t.index[investor] = i
		t.entries = append(t.entries, Ownership{Investor: investor})
	}
	t.shares = total
	t.cash = t.cash.Add(cash)

	// An investor's subtotal never exceeds the grand total, it cannot overflow.
	e := &t.entries[i]
	e.Shares += shares
	e.Cash = e.Cash.Add(cash)
	return nil
}
