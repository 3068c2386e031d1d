package create_reservation

import (
	"errors"

	"github.com/vitrineapp/VA-BookingService/internal/domain"
	createReservation "github.com/vitrineapp/VA-BookingService/internal/usecase/create_reservation"
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

// CreateReservationRequest HTTP request model. The user id comes from the
// identity header, not the body.
type CreateReservationRequest struct {
	ServiceID        string                   `json:"serviceId"`
	SlotID           string                   `json:"slotId"`
	VehicleDetails   *VehicleDetailsRequest   `json:"vehicleDetails,omitempty"`
	TablePreferences *TablePreferencesRequest `json:"tablePreferences,omitempty"`
	Addons           []AddonRequest           `json:"addons,omitempty"`
	ActiveConditions []string                 `json:"activeConditions,omitempty"`
	SpecialRequests  *string                  `json:"specialRequests,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CreateReservationRequest) ToUseCaseRequest(userID string) (*createReservation.Request, error) {
	detail, err := toDetailPayload(r.VehicleDetails, r.TablePreferences)
	if err != nil {
		return nil, err
	}

	addons := make([]createReservation.AddonInput, 0, len(r.Addons))
	for _, a := range r.Addons {
		addons = append(addons, createReservation.AddonInput{
			ID:    a.ID,
			Name:  a.Name,
			Price: domain.Money(a.Price),
		})
	}

	return &createReservation.Request{
		UserID:           userID,
		ServiceID:        r.ServiceID,
		SlotID:           r.SlotID,
		Detail:           detail,
		Addons:           addons,
		ActiveConditions: r.ActiveConditions,
		SpecialRequests:  r.SpecialRequests,
	}, nil
}

func toDetailPayload(vehicle *VehicleDetailsRequest, table *TablePreferencesRequest) (domain.DetailPayload, error) {
	switch {
	case vehicle != nil && table != nil:
		return domain.DetailPayload{}, errAmbiguousDetail
	case vehicle != nil:
		return domain.VehicleDetail(domain.VehicleDetails{
			Brand:        vehicle.Brand,
			Model:        vehicle.Model,
			Type:         vehicle.Type,
			Size:         vehicle.Size,
			Color:        vehicle.Color,
			LicensePlate: vehicle.LicensePlate,
		}), nil
	case table != nil:
		return domain.TableDetail(domain.TablePreferences{
			TableNumber: table.TableNumber,
			Location:    table.Location,
			Capacity:    table.Capacity,
		}), nil
	default:
		return domain.NoDetail(), nil
	}
}
