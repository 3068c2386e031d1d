package models

import (
	"errors"
	"time"

	"github.com/vitrineapp/VA-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus is returned for unrecognized status strings.
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request models

// CancelReservationRequest is the cancellation input.
type CancelReservationRequest struct {
	UserID             string `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetUserReservationsRequest filters a user's reservation history.
type GetUserReservationsRequest struct {
	UserID string  `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// Response models

// VehicleDetailsResponse mirrors domain.VehicleDetails on the wire.
type VehicleDetailsResponse struct {
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Type         string `json:"type"`
	Size         string `json:"size"`
	Color        string `json:"color"`
	LicensePlate string `json:"licensePlate"`
}

// TablePreferencesResponse mirrors domain.TablePreferences on the wire.
type TablePreferencesResponse struct {
	TableNumber *int   `json:"tableNumber,omitempty"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
}

// PricingBreakdownResponse is the itemized price of the reservation.
type PricingBreakdownResponse struct {
	Base        int64   `json:"base"`
	Addons      int64   `json:"addons"`
	Multipliers float64 `json:"multipliers"`
	Total       int64   `json:"total"`
}

// ReservationResponse is the wire form of a reservation.
type ReservationResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	ServiceID   string `json:"serviceId"`
	SlotID      string `json:"slotId"`
	ScheduledAt string `json:"scheduledAt"` // ISO 8601
	Status      string `json:"status"`

	VehicleDetails   *VehicleDetailsResponse   `json:"vehicleDetails,omitempty"`
	TablePreferences *TablePreferencesResponse `json:"tablePreferences,omitempty"`

	SelectedAddons  []string `json:"selectedAddons"`
	SpecialRequests *string  `json:"specialRequests,omitempty"`

	PricingBreakdown PricingBreakdownResponse `json:"pricingBreakdown"`

	EstimatedDuration int     `json:"estimatedDuration"`
	ActualStartTime   *string `json:"actualStartTime,omitempty"`
	ActualEndTime     *string `json:"actualEndTime,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse wraps a reservation list.
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Conversion helpers

// FromDomainReservation converts a domain model into its wire form.
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:               r.ID,
		UserID:           r.UserID,
		ServiceID:        r.ServiceID,
		SlotID:           r.SlotID,
		ScheduledAt:      r.ScheduledAt.Format(time.RFC3339),
		Status:           string(r.Status),
		SelectedAddons:   append([]string{}, r.SelectedAddons...),
		SpecialRequests:  r.SpecialRequests,
		PricingBreakdown: PricingBreakdownResponse{
			Base:        int64(r.Pricing.Base),
			Addons:      int64(r.Pricing.Addons),
			Multipliers: r.Pricing.Multiplier,
			Total:       int64(r.Pricing.Total),
		},
		EstimatedDuration:  r.EstimatedDurationMinutes,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	switch r.Detail.Kind {
	case domain.DetailVehicle:
		v := r.Detail.Vehicle
		resp.VehicleDetails = &VehicleDetailsResponse{
			Brand:        v.Brand,
			Model:        v.Model,
			Type:         v.Type,
			Size:         v.Size,
			Color:        v.Color,
			LicensePlate: v.LicensePlate,
		}
	case domain.DetailTable:
		t := r.Detail.Table
		resp.TablePreferences = &TablePreferencesResponse{
			TableNumber: t.TableNumber,
			Location:    t.Location,
			Capacity:    t.Capacity,
		}
	}

	if r.ActualStartTime != nil {
		s := r.ActualStartTime.Format(time.RFC3339)
		resp.ActualStartTime = &s
	}
	if r.ActualEndTime != nil {
		s := r.ActualEndTime.Format(time.RFC3339)
		resp.ActualEndTime = &s
	}
	if r.CancelledAt != nil {
		s := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &s
	}

	return resp
}

// FromDomainReservationList converts a reservation slice.
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}
	for _, r := range reservations {
		if converted := FromDomainReservation(r); converted != nil {
			resp.Reservations = append(resp.Reservations, *converted)
		}
	}
	return resp
}

// ToDomainReservationStatus validates and converts a status string.
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	parsed, ok := domain.ParseReservationStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}
	return parsed, nil
}
