package quote

import "errors"

var (
	// ErrServiceNotFound is returned for an unknown service id.
	ErrServiceNotFound = errors.New("quote: service not found")

	// ErrBookingNotSupported is returned when the service's booking flow
	// is "none".
	ErrBookingNotSupported = errors.New("quote: service does not take reservations")

	// ErrUnknownSlot is returned when the slot id is not in the calendar.
	ErrUnknownSlot = errors.New("quote: unknown slot")

	// ErrSlotUnavailable is returned when quoting a slot that is already
	// claimed: the offer no longer stands.
	ErrSlotUnavailable = errors.New("quote: slot is not available")

	// ErrDetailMismatch is returned when the detail payload does not match
	// what the service's booking flow requires.
	ErrDetailMismatch = errors.New("quote: detail payload does not match service")

	// ErrInvalidPriceInput is returned when pricing rejects the inputs.
	ErrInvalidPriceInput = errors.New("quote: invalid price input")

	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("quote: invalid input data")

	// ErrInternal is returned on internal usecase errors.
	ErrInternal = errors.New("quote: internal error")
)
