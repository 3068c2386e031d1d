package quote

import (
	"errors"

	"github.com/vitrineapp/VA-BookingService/internal/domain"
	quoteUC "github.com/vitrineapp/VA-BookingService/internal/usecase/quote"
)

var errAmbiguousDetail = errors.New("both vehicleDetails and tablePreferences present")

// VehicleDetailsRequest carries the vehicle form of the advanced flow.
type VehicleDetailsRequest struct {
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Type         string `json:"type"`
	Size         string `json:"size"`
	Color        string `json:"color"`
	LicensePlate string `json:"licensePlate"`
}

// TablePreferencesRequest carries the table selection of the advanced flow.
type TablePreferencesRequest struct {
	TableNumber *int   `json:"tableNumber,omitempty"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
}

// AddonRequest is one priced extra. Price is in minor currency units.
type AddonRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// QuoteRequest HTTP request model. Detail payloads are optional for a
// quote; when present they are validated like a booking.
type QuoteRequest struct {
	ServiceID        string                   `json:"serviceId"`
	SlotID           string                   `json:"slotId"`
	VehicleDetails   *VehicleDetailsRequest   `json:"vehicleDetails,omitempty"`
	TablePreferences *TablePreferencesRequest `json:"tablePreferences,omitempty"`
	Addons           []AddonRequest           `json:"addons,omitempty"`
	ActiveConditions []string                 `json:"activeConditions,omitempty"`
}

// PricingBreakdownResponse is the itemized quote.
type PricingBreakdownResponse struct {
	Base        int64   `json:"base"`
	Addons      int64   `json:"addons"`
	Multipliers float64 `json:"multipliers"`
	Total       int64   `json:"total"`
}

// QuoteResponse HTTP response model.
type QuoteResponse struct {
	ServiceID        string                   `json:"serviceId"`
	SlotID           string                   `json:"slotId"`
	PricingBreakdown PricingBreakdownResponse `json:"pricingBreakdown"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *QuoteRequest) ToUseCaseRequest() (*quoteUC.Request, error) {
	var detail *domain.DetailPayload
	switch {
	case r.VehicleDetails != nil && r.TablePreferences != nil:
		return nil, errAmbiguousDetail
	case r.VehicleDetails != nil:
		d := domain.VehicleDetail(domain.VehicleDetails{
			Brand:        r.VehicleDetails.Brand,
			Model:        r.VehicleDetails.Model,
			Type:         r.VehicleDetails.Type,
			Size:         r.VehicleDetails.Size,
			Color:        r.VehicleDetails.Color,
			LicensePlate: r.VehicleDetails.LicensePlate,
		})
		detail = &d
	case r.TablePreferences != nil:
		d := domain.TableDetail(domain.TablePreferences{
			TableNumber: r.TablePreferences.TableNumber,
			Location:    r.TablePreferences.Location,
			Capacity:    r.TablePreferences.Capacity,
		})
		detail = &d
	}

	addons := make([]quoteUC.AddonInput, 0, len(r.Addons))
	for _, a := range r.Addons {
		addons = append(addons, quoteUC.AddonInput{
			ID:    a.ID,
			Name:  a.Name,
			Price: domain.Money(a.Price),
		})
	}

	return &quoteUC.Request{
		ServiceID:        r.ServiceID,
		SlotID:           r.SlotID,
		Detail:           detail,
		Addons:           addons,
		ActiveConditions: r.ActiveConditions,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *quoteUC.Response) *QuoteResponse {
	return &QuoteResponse{
		ServiceID: resp.ServiceID,
		SlotID:    resp.SlotID,
		PricingBreakdown: PricingBreakdownResponse{
			Base:        int64(resp.Breakdown.Base),
			Addons:      int64(resp.Breakdown.Addons),
			Multipliers: resp.Breakdown.Multiplier,
			Total:       int64(resp.Breakdown.Total),
		},
	}
}
