package get_available_slots

import (
	"time"

	"github.com/vitrineapp/VA-BookingService/internal/domain"
	"github.com/vitrineapp/VA-BookingService/pkg/types"
)

// Request identifies one service day.
type Request struct {
	ServiceID string
	Date      time.Time
}

// Slot is one offerable slot in the response.
type Slot struct {
	ID              string
	StartTime       types.TimeString
	BasePrice       domain.Money
	DurationMinutes int
}

// Response is the availability snapshot.
type Response struct {
	ServiceID string
	Date      time.Time
	Slots     []Slot
}
