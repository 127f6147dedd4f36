package captable

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Cash is an amount of money paid for shares.
//
// It is an exact decimal: sums never drift, and rounding to cents only
// happens when it is formatted.
type Cash struct {
	value decimal.Decimal
}

// C returns the Cash amount for value.
func C[T float64 | int | int64 | uint64 | decimal.Decimal](value T) Cash {
	return Cash{value: newDecimal(value)}
}

// ParseCash parses a decimal amount like "1234.5".
func ParseCash(s string) (Cash, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Cash{}, fmt.Errorf("invalid cash amount %q: %w", s, err)
	}
	return Cash{value: v}, nil
}

func (c Cash) Add(n Cash) Cash          { return Cash{value: c.value.Add(n.value)} }
func (c Cash) Equal(n Cash) bool        { return c.value.Equal(n.value) }
func (c Cash) IsZero() bool             { return c.value.IsZero() }
func (c Cash) IsNegative() bool         { return c.value.IsNegative() }
func (c Cash) Decimal() decimal.Decimal { return c.value }

// String returns the amount with exactly two fractional digits, e.g. "1234.50".
func (c Cash) String() string { return c.value.StringFixed(2) }

// MarshalJSON persists the exact amount as a JSON number.
func (c Cash) MarshalJSON() ([]byte, error) {
	return []byte(c.value.String()), nil
}

// UnmarshalJSON accepts both a JSON number and a quoted decimal string.
func (c *Cash) UnmarshalJSON(b []byte) error {
	return c.value.UnmarshalJSON(b)
}
