package quote

import (
	"github.com/vitrineapp/VA-BookingService/internal/domain"
)

// AddonInput is one priced extra selected by the customer.
type AddonInput struct {
	ID    string
	Name  string
	Price domain.Money
}

// Request is the quote input. Detail is optional context: when present it
// is validated against the service flow exactly like a booking, so a
// quote that succeeds will not later fail DetailMismatch on book.
type Request struct {
	ServiceID        string
	SlotID           string
	Detail           *domain.DetailPayload
	Addons           []AddonInput
	ActiveConditions []string
}

// Response is the priced preview.
type Response struct {
	ServiceID string
	SlotID    string
	Breakdown domain.PricingBreakdown
}

func (r *Request) addons() []domain.Addon {
	addons := make([]domain.Addon, 0, len(r.Addons))
	for _, a := range r.Addons {
		addons = append(addons, domain.Addon{ID: a.ID, Name: a.Name, Price: a.Price})
	}
	return addons
}
