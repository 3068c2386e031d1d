package create_reservation

import (
	"fmt"

	"github.com/vitrineapp/VA-BookingService/internal/domain"
)

// validateRequest checks the request shape before any slot is touched.
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}
	if req.SlotID == "" {
		return fmt.Errorf("%w: slotID is required", ErrInvalidInput)
	}
	if len(req.Addons) > domain.MaxAddonsPerReservation {
		return fmt.Errorf("%w: at most %d addons", ErrInvalidInput, domain.MaxAddonsPerReservation)
	}
	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special requests exceed %d characters", ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}
	if !req.Detail.IsConsistent() {
		return fmt.Errorf("%w: detail payload variant does not match its kind", ErrInvalidInput)
	}
	return nil
}

// validateDetail checks the payload against the service's declared
// booking-flow needs.
func validateDetail(required domain.DetailKind, detail domain.DetailPayload) error {
	if detail.Kind != required {
		return fmt.Errorf("%w: service requires %s detail, got %s", ErrDetailMismatch, required, detail.Kind)
	}
	return nil
}
