package get_available_slots

import "errors"

var (
	// ErrServiceNotFound is returned for an unknown service id.
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrBookingNotSupported is returned when the service's booking flow
	// is "none": it has no slots to offer.
	ErrBookingNotSupported = errors.New("get_available_slots: service does not take reservations")

	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")
)
