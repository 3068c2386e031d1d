package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultCurrency            = "EUR"
)

// Business validation constants
const (
	MinSlotDurationMinutes      = 5
	MaxSlotDurationMinutes      = 480 // 8 hours
	MaxAddonsPerReservation     = 20
	MaxSpecialRequestsLength    = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TerminalStatuses lists statuses a reservation can never leave.
var TerminalStatuses = []ReservationStatus{
	StatusCompleted,
	StatusCancelled,
}

// ActiveStatuses lists statuses of reservations that still hold their slot.
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
}
