package create_reservation

import (
	"time"

	"github.com/vitrineapp/VA-BookingService/internal/domain"
)

// AddonInput is one priced extra selected by the customer.
type AddonInput struct {
	ID    string
	Name  string
	Price domain.Money
}

// Request is the booking input.
type Request struct {
	UserID           string
	ServiceID        string
	SlotID           string
	Detail           domain.DetailPayload
	Addons           []AddonInput
	ActiveConditions []string
	SpecialRequests  *string
}

// Response is the created reservation.
type Response struct {
	Reservation *domain.Reservation
}

func (r *Request) addons() []domain.Addon {
	addons := make([]domain.Addon, 0, len(r.Addons))
	for _, a := range r.Addons {
		addons = append(addons, domain.Addon{ID: a.ID, Name: a.Name, Price: a.Price})
	}
	return addons
}

func (r *Request) addonIDs() []string {
	ids := make([]string, 0, len(r.Addons))
	for _, a := range r.Addons {
		ids = append(ids, a.ID)
	}
	return ids
}

// scheduledAt combines the slot's date and wall-clock start into one
// timestamp.
func scheduledAt(slot domain.TimeSlot) time.Time {
	minutes, err := slot.StartTime.Minutes()
	if err != nil {
		return slot.Date
	}
	return slot.Date.Add(time.Duration(minutes) * time.Minute)
}
