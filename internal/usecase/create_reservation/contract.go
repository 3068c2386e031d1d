package create_reservation

import (
	"context"

	"github.com/vitrineapp/VA-BookingService/internal/domain"
)

// SlotCalendar claims and releases slots. Reserve must be atomic: at most
// one concurrent caller wins a slot.
type SlotCalendar interface {
	Reserve(slotID string) (domain.TimeSlot, error)
	Release(slotID string) error
}

// ServiceCatalog resolves services and their booking-flow requirements.
type ServiceCatalog interface {
	GetByID(id string) (domain.ServiceConfig, bool)
	SupportsDetail(t domain.ServiceType) domain.DetailKind
}

// PricingEngine prices a (slot, addons, conditions) tuple.
type PricingEngine interface {
	ComputePrice(base domain.Money, durationMinutes int, addons []domain.Addon, rules []domain.PricingRule, activeConditions map[string]struct{}) (*domain.PricingBreakdown, error)
}

// PricingRuleSource supplies the configured rules of a service.
type PricingRuleSource interface {
	RulesFor(serviceID string) []domain.PricingRule
}

// ReservationRepository persists the created reservation.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// SlotStore mirrors the claim to durable storage. Optional: nil disables
// mirroring.
type SlotStore interface {
	SetAvailability(ctx context.Context, slotID string, available bool) error
}

// TransactionManager wraps the persistence writes of one booking.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging contract.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
