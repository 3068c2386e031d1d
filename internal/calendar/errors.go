package calendar

import "errors"

var (
	// ErrSlotUnavailable is returned when a slot is already claimed.
	// Recoverable: the caller should re-query available slots.
	ErrSlotUnavailable = errors.New("calendar: slot is not available")

	// ErrUnknownSlot is returned when a slot id is not in the calendar.
	ErrUnknownSlot = errors.New("calendar: unknown slot")

	// ErrDuplicateSlot is returned when seeding a slot id twice. Slot
	// identity fields are immutable post-creation, so overwrites are
	// rejected.
	ErrDuplicateSlot = errors.New("calendar: duplicate slot")

	// ErrInvalidSlot is returned when a seeded slot violates its
	// invariants.
	ErrInvalidSlot = errors.New("calendar: invalid slot")
)
