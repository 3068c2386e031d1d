package get_available_slots

import (
	"github.com/vitrineapp/VA-BookingService/internal/domain"
	getAvailableSlots "github.com/vitrineapp/VA-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse is one offerable slot on the wire.
type SlotResponse struct {
	ID              string `json:"id"`
	StartTime       string `json:"startTime"`
	BasePrice       int64  `json:"basePrice"`
	DurationMinutes int    `json:"durationMinutes"`
}

// AvailableSlotsResponse HTTP response model.
type AvailableSlotsResponse struct {
	ServiceID string         `json:"serviceId"`
	Date      string         `json:"date"`
	Slots     []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			ID:              s.ID,
			StartTime:       s.StartTime.String(),
			BasePrice:       int64(s.BasePrice),
			DurationMinutes: s.DurationMinutes,
		})
	}
	return &AvailableSlotsResponse{
		ServiceID: resp.ServiceID,
		Date:      resp.Date.Format(domain.DateFormat),
		Slots:     slots,
	}
}
