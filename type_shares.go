package captable

import (
	"math/bits"
	"strconv"
)

// Shares is a count of shares. It is a whole, non-negative number.
type Shares uint64

// add returns s+n and false if the sum does not fit in a Shares.
func (s Shares) add(n Shares) (Shares, bool) {
	sum, carry := bits.Add64(uint64(s), uint64(n), 0)
	return Shares(sum), carry == 0
}

func (s Shares) IsZero() bool   { return s == 0 }
func (s Shares) String() string { return strconv.FormatUint(uint64(s), 10) }
func (s Shares) Uint64() uint64 { return uint64(s) }
