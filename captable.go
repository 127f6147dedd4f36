package captable

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Order defines how investors are listed in a report.
type Order int

const (
	// ByInvestor lists investors in ascending lexicographic order of their identifier.
	ByInvestor Order = iota
	// FirstSeen lists investors in the order they first appear in the purchases.
	FirstSeen
)

func (o Order) String() string {
	switch o {
	case ByInvestor:
		return "investor"
	case FirstSeen:
		return "first-seen"
	default:
		return "unknown"
	}
}

// ParseOrder parses a string into an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "investor":
		return ByInvestor, nil
	case "first-seen":
		return FirstSeen, nil
	default:
		return 0, fmt.Errorf("unknown order: %q", s)
	}
}

// Option configures a CapTable.
type Option func(*CapTable)

// WithOrder sets the order of investors in the report. Default is ByInvestor.
func WithOrder(o Order) Option {
	return func(c *CapTable) { c.order = o }
}

type state int

const (
	accumulating state = iota
	complete
	failed
)

// CapTable computes the cap table on a given date, one purchase at a time.
//
// Purchases are added with Add; Report then computes ownership and closes the
// cap table. Once closed (successfully or not) a CapTable cannot be reused.
type CapTable struct {
	date  Date
	order Order
	tally *tally

	state  state
	report Report
	err    error
}

// NewCapTable creates an empty cap table for the report date on.
func NewCapTable(on Date, opts ...Option) *CapTable {
	c := &CapTable{date: on, tally: newTally()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Date returns the report date.
func (c *CapTable) Date() Date { return c.date }

// Add accumulates p if it was made on or before the report date, and ignores it otherwise.
//
// An overflow fails the cap table: the error is returned again by every
// subsequent call.
func (c *CapTable) Add(p Purchase) error {
	switch c.state {
	case complete:
		return ErrClosed
	case failed:
		return c.err
	}
	if !OnOrBefore(p, c.date) {
		return nil
	}
	if err := c.tally.accumulate(p); err != nil {
		c.state, c.err = failed, err
		return err
	}
	return nil
}

// Report computes the ownership percentages and returns the final report.
//
// It fails with ErrZeroShares if no shares qualify. Calling it again returns
// the same result.
func (c *CapTable) Report() (Report, error) {
	switch c.state {
	case complete:
		return c.report, nil
	case failed:
		return Report{}, c.err
	}
	r, err := assemble(c.date, c.tally, c.order)
	if err != nil {
		c.state, c.err = failed, err
		return Report{}, err
	}
	c.state, c.report = complete, r
	return r, nil
}

// Compute returns the cap table on a date from a sequence of purchases,
// consumed once, in order.
func Compute(on Date, purchases iter.Seq[Purchase], opts ...Option) (Report, error) {
	c := NewCapTable(on, opts...)
	for p := range purchases {
		if err := c.Add(p); err != nil {
			return Report{}, err
		}
	}
	return c.Report()
}

// assemble runs the ownership pass over a finished tally and orders the result.
// The tally itself is left untouched.
func assemble(on Date, t *tally, order Order) (Report, error) {
	if t.shares.IsZero() {
		return Report{}, fmt.Errorf("cap table on %s: %w", on, ErrZeroShares)
	}

	ownership := slices.Clone(t.entries)
	for i := range ownership {
		ownership[i].Percent = ownershipPercent(ownership[i].Shares, t.shares)
	}

	switch order {
	case ByInvestor:
		slices.SortFunc(ownership, func(a, b Ownership) int { return strings.Compare(a.Investor, b.Investor) })
	case FirstSeen:
		// entries are already in first-seen order.
	default:
		return Report{}, fmt.Errorf("unsupported order %v", order)
	}

	return Report{
		date:        on,
		cashRaised:  t.cash,
		totalShares: t.shares,
		ownership:   ownership,
	}, nil
}
