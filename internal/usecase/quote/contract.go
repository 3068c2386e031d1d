package quote

import (
	"github.com/vitrineapp/VA-BookingService/internal/domain"
)

// SlotCalendar reads slot snapshots. Quote never claims.
type SlotCalendar interface {
	Get(slotID string) (domain.TimeSlot, error)
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

// Logger is the logging contract.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
