package domain

import (
	"time"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "pending"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusInProgress ReservationStatus = "in_progress"
	StatusCompleted  ReservationStatus = "completed"
	StatusCancelled  ReservationStatus = "cancelled"
)

// ParseReservationStatus validates a status string.
func ParseReservationStatus(s string) (ReservationStatus, bool) {
	status := ReservationStatus(s)
	switch status {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return status, true
	}
	return "", false
}

// IsTerminal reports whether the status can never change again.
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo encodes the lifecycle graph:
// pending -> confirmed -> in_progress -> completed, with cancelled
// reachable from every non-terminal state.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	switch next {
	case StatusConfirmed:
		return s == StatusPending
	case StatusInProgress:
		return s == StatusConfirmed
	case StatusCompleted:
		return s == StatusInProgress
	case StatusCancelled:
		return !s.IsTerminal()
	default:
		return false
	}
}

// VehicleDetails is the detail payload for vehicle-form booking flows.
type VehicleDetails struct {
	Brand        string
	Model        string
	Type         string
	Size         string
	Color        string
	LicensePlate string
}

// TablePreferences is the detail payload for table-selection booking flows.
type TablePreferences struct {
	TableNumber *int
	Location    string
	Capacity    int
}

// DetailPayload is the tagged union of service-specific booking details.
// Exactly one variant matches Kind; the others are nil.
type DetailPayload struct {
	Kind    DetailKind
	Vehicle *VehicleDetails
	Table   *TablePreferences
}

// VehicleDetail builds a vehicle-form payload.
func VehicleDetail(v VehicleDetails) DetailPayload {
	return DetailPayload{Kind: DetailVehicle, Vehicle: &v}
}

// TableDetail builds a table-selection payload.
func TableDetail(t TablePreferences) DetailPayload {
	return DetailPayload{Kind: DetailTable, Table: &t}
}

// NoDetail builds the empty payload for flows that need neither variant.
func NoDetail() DetailPayload {
	return DetailPayload{Kind: DetailNone}
}

// IsConsistent reports whether the populated variant matches the tag.
func (d DetailPayload) IsConsistent() bool {
	switch d.Kind {
	case DetailVehicle:
		return d.Vehicle != nil && d.Table == nil
	case DetailTable:
		return d.Table != nil && d.Vehicle == nil
	case DetailNone:
		return d.Vehicle == nil && d.Table == nil
	default:
		return false
	}
}

// Reservation is a committed booking of one slot by one customer.
type Reservation struct {
	ID          string
	UserID      string
	ServiceID   string
	SlotID      string
	ScheduledAt time.Time
	Status      ReservationStatus

	Detail          DetailPayload
	SelectedAddons  []string
	SpecialRequests *string

	Pricing PricingBreakdown

	EstimatedDurationMinutes int
	ActualStartTime          *time.Time
	ActualEndTime            *time.Time

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the reservation still holds its slot.
func (r *Reservation) IsActive() bool {
	return !r.Status.IsTerminal()
}

// CanBeCancelled reports whether cancel is a legal transition.
func (r *Reservation) CanBeCancelled() bool {
	return r.Status.CanTransitionTo(StatusCancelled)
}
