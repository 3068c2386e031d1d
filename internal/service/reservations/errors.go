package reservations

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation id is unknown.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidTransition is returned when a lifecycle rule is violated.
	// The reservation state is unchanged on this failure.
	ErrInvalidTransition = errors.New("invalid reservation transition")

	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("service: internal error")
)
