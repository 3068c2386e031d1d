package get_available_slots

import (
	"context"
	"fmt"

	"github.com/vitrineapp/VA-BookingService/internal/domain"
)

// UseCase lists the slots a service can still offer on a date.
type UseCase struct {
	cal     SlotCalendar
	catalog ServiceCatalog
	logger  Logger
}

// NewUseCase creates the availability use case.
func NewUseCase(cal SlotCalendar, catalog ServiceCatalog, logger Logger) *UseCase {
	return &UseCase{
		cal:     cal,
		catalog: catalog,
		logger:  logger,
	}
}

// Execute returns the current availability snapshot. A fresh call always
// reflects current state; callers re-query after a failed claim.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s", req.ServiceID, req.Date.Format(domain.DateFormat))

	if req.ServiceID == "" {
		return nil, fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	service, ok := uc.catalog.GetByID(req.ServiceID)
	if !ok {
		uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
		return nil, ErrServiceNotFound
	}
	if service.BookingFlow == domain.FlowNone {
		uc.logger.Warn("GetAvailableSlots: service id=%s does not take reservations", req.ServiceID)
		return nil, ErrBookingNotSupported
	}

	available := uc.cal.ListAvailable(req.ServiceID, req.Date)

	slots := make([]Slot, 0, len(available))
	for _, s := range available {
		slots = append(slots, Slot{
			ID:              s.ID,
			StartTime:       s.StartTime,
			BasePrice:       s.BasePrice,
			DurationMinutes: s.DurationMinutes,
		})
	}

	uc.logger.Info("GetAvailableSlots: service=%s date=%s -> %d slots",
		req.ServiceID, req.Date.Format(domain.DateFormat), len(slots))
	return &Response{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Slots:     slots,
	}, nil
}
