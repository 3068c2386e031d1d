package reservations

import (
	"context"
	"time"

	"github.com/vitrineapp/VA-BookingService/internal/domain"
)

// ReservationRepository is the persistence contract of the lifecycle
// service.
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	GetByUserID(ctx context.Context, userID string, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus, startedAt, endedAt *time.Time) error
	SetCancelled(ctx context.Context, id string, reason *string, cancelledAt time.Time) error
}

// SlotCalendar is the part of the calendar the lifecycle needs: returning
// a cancelled reservation's slot to the pool.
type SlotCalendar interface {
	Release(slotID string) error
}

// SlotStore mirrors availability flips to durable storage. Optional: a nil
// store disables mirroring.
type SlotStore interface {
	SetAvailability(ctx context.Context, slotID string, available bool) error
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging contract.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
