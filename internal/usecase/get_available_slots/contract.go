package get_available_slots

import (
	"time"

	"github.com/vitrineapp/VA-BookingService/internal/domain"
)

// SlotCalendar lists availability snapshots.
type SlotCalendar interface {
	ListAvailable(serviceID string, date time.Time) []domain.TimeSlot
}

// ServiceCatalog resolves services.
type ServiceCatalog interface {
	GetByID(id string) (domain.ServiceConfig, bool)
}

// Logger is the logging contract.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
