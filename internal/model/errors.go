package model

import "errors"

// The pipeline distinguishes exactly two error kinds. Both are wrapped
// with context at the point of failure and matched with errors.Is at the
// outermost caller, which converts them to a printed message or an HTTP
// status.
var (
	// ErrInvalidParameter marks a mathematically unusable input, e.g. a
	// discount rate not greater than the growth rate.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDataUnavailable marks a required financial field the provider
	// could not supply for a ticker.
	ErrDataUnavailable = errors.New("data unavailable")
)
