package captable

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Percent is an ownership percentage, in the 0-100 range.
type Percent struct {
	value decimal.Decimal
}

// ownershipPercent returns shares*100/total. It is not rounded; total must not be zero.
func ownershipPercent(shares, total Shares) Percent {
	s := decimal.NewFromUint64(uint64(shares))
	t := decimal.NewFromUint64(uint64(total))
	return Percent{value: s.Mul(hundred).Div(t)}
}

// Equal compares percentages with a 1e-6 tolerance.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.000001
	diff := p.value.Sub(q.value).Abs()
	return diff.LessThan(decimal.NewFromFloat(precision))
}

func (p Percent) Add(q Percent) Percent    { return Percent{value: p.value.Add(q.value)} }
func (p Percent) IsZero() bool             { return p.value.IsZero() }
func (p Percent) Decimal() decimal.Decimal { return p.value }
func (p Percent) InexactFloat64() float64  { return p.value.InexactFloat64() }

// String returns the percentage with exactly two fractional digits, e.g. "66.67".
func (p Percent) String() string { return p.value.StringFixed(2) }
