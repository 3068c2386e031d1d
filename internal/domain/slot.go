package domain

import (
	"fmt"
	"time"

	"github.com/vitrineapp/VA-BookingService/pkg/types"
)

// TimeSlot is one offerable interval for one service on one day.
// Identity fields (ServiceID, Date, StartTime, BasePrice, DurationMinutes)
// are fixed at creation; only Available flips as reservations claim and
// release the slot.
type TimeSlot struct {
	ID              string
	ServiceID       string
	Date            time.Time
	StartTime       types.TimeString
	Available       bool
	BasePrice       Money
	DurationMinutes int
}

// SlotID builds the canonical slot key: "<serviceID>/<date>/<time>".
func SlotID(serviceID string, date time.Time, startTime types.TimeString) string {
	return fmt.Sprintf("%s/%s/%s", serviceID, date.Format(DateFormat), startTime)
}

// Validate checks the slot invariants: positive duration, non-negative
// price, well-formed start time.
func (s *TimeSlot) Validate() error {
	if s.DurationMinutes <= 0 {
		return fmt.Errorf("slot %s: duration must be positive, got %d", s.ID, s.DurationMinutes)
	}
	if s.BasePrice < 0 {
		return fmt.Errorf("slot %s: base price must not be negative, got %d", s.ID, s.BasePrice)
	}
	return s.StartTime.Validate()
}

// EndTime returns the wall-clock end of the interval.
func (s *TimeSlot) EndTime() (types.TimeString, error) {
	return s.StartTime.AddMinutes(s.DurationMinutes)
}
