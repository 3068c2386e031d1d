package pricing

import "errors"

var (
	// ErrInvalidPriceInput is returned when the base price or an add-on
	// price is negative. This is a caller or configuration bug and is
	// surfaced, never clamped.
	ErrInvalidPriceInput = errors.New("pricing: invalid price input")

	// ErrInvalidRule is returned when a configured rule carries a
	// non-positive multiplier.
	ErrInvalidRule = errors.New("pricing: invalid pricing rule")
)
