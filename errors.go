package captable

import "errors"

var (
	// ErrZeroShares is returned when no shares at all qualify for the report
	// date: ownership percentages cannot be computed.
	ErrZeroShares = errors.New("total shares is zero")

	// ErrAccumulationOverflow is returned when the total number of shares
	// does not fit in a Shares.
	ErrAccumulationOverflow = errors.New("share accumulation overflow")

	// ErrClosed is returned when a purchase is added to a cap table whose
	// report has already been produced.
	ErrClosed = errors.New("cap table is closed")
)
