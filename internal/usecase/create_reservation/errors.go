package create_reservation

import "errors"

var (
	// ErrServiceNotFound is returned for an unknown service id.
	ErrServiceNotFound = errors.New("create_reservation: service not found")

	// ErrBookingNotSupported is returned when the service's booking flow
	// is "none" (e.g. boutique).
	ErrBookingNotSupported = errors.New("create_reservation: service does not take reservations")

	// ErrUnknownSlot is returned when the slot id is not in the calendar.
	ErrUnknownSlot = errors.New("create_reservation: unknown slot")

	// ErrSlotUnavailable is returned when the slot is already claimed.
	// Recoverable: the caller should re-query available slots.
	ErrSlotUnavailable = errors.New("create_reservation: slot is not available")

	// ErrDetailMismatch is returned when the detail payload does not match
	// what the service's booking flow requires.
	ErrDetailMismatch = errors.New("create_reservation: detail payload does not match service")

	// ErrInvalidPriceInput is returned when pricing rejects the inputs.
	ErrInvalidPriceInput = errors.New("create_reservation: invalid price input")

	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal is returned on internal usecase errors.
	ErrInternal = errors.New("create_reservation: internal error")
)
