package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vitrineapp/VA-BookingService/internal/calendar"
	"github.com/vitrineapp/VA-BookingService/internal/domain"
	"github.com/vitrineapp/VA-BookingService/internal/pricing"
)

// UseCase is the booking orchestration: claim the slot, price the tuple,
// persist the reservation. Any failure after the claim releases the slot
// before returning, so a failed booking never leaks a claim.
type UseCase struct {
	cal       SlotCalendar
	catalog   ServiceCatalog
	engine    PricingEngine
	rules     PricingRuleSource
	repo      ReservationRepository
	slotStore SlotStore
	txManager TransactionManager
	logger    Logger
}

// NewUseCase creates the booking use case. slotStore may be nil when no
// durable slot mirror is configured.
func NewUseCase(
	cal SlotCalendar,
	catalog ServiceCatalog,
	engine PricingEngine,
	rules PricingRuleSource,
	repo ReservationRepository,
	slotStore SlotStore,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		cal:       cal,
		catalog:   catalog,
		engine:    engine,
		rules:     rules,
		repo:      repo,
		slotStore: slotStore,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute books one slot for one customer.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%s, service=%s, slot=%s, conditions=%v",
		req.UserID, req.ServiceID, req.SlotID, req.ActiveConditions)

	// 1. Validate the request shape.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the service and gate the booking flow.
	service, ok := uc.catalog.GetByID(req.ServiceID)
	if !ok {
		uc.logger.Warn("CreateReservation: service id=%s not found", req.ServiceID)
		return nil, ErrServiceNotFound
	}
	if service.BookingFlow == domain.FlowNone {
		uc.logger.Warn("CreateReservation: service id=%s does not take reservations", req.ServiceID)
		return nil, ErrBookingNotSupported
	}

	// 3. The detail payload must match what the flow declares.
	if err := validateDetail(uc.catalog.SupportsDetail(service.Type), req.Detail); err != nil {
		uc.logger.Warn("CreateReservation: detail mismatch for service id=%s: %v", req.ServiceID, err)
		return nil, err
	}

	// 4. Claim the slot. This is the single racing step; everything after
	// it must release on failure.
	slot, err := uc.cal.Reserve(req.SlotID)
	if err != nil {
		if errors.Is(err, calendar.ErrUnknownSlot) {
			uc.logger.Warn("CreateReservation: unknown slot id=%s", req.SlotID)
			return nil, ErrUnknownSlot
		}
		if errors.Is(err, calendar.ErrSlotUnavailable) {
			uc.logger.Warn("CreateReservation: slot id=%s not available", req.SlotID)
			return nil, ErrSlotUnavailable
		}
		uc.logger.Error("CreateReservation: reserve slot id=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: reserve slot: %v", ErrInternal, err)
	}

	if slot.ServiceID != req.ServiceID {
		uc.releaseClaim(req.SlotID)
		uc.logger.Warn("CreateReservation: slot id=%s belongs to service %s, not %s",
			req.SlotID, slot.ServiceID, req.ServiceID)
		return nil, fmt.Errorf("%w: slot belongs to another service", ErrInvalidInput)
	}

	// 5. Price the booking. Rules apply only to services with the
	// dynamic-pricing capability; others always get multiplier 1.0.
	var rules []domain.PricingRule
	if service.HasFeature(string(domain.CapabilityDynamicPricing)) {
		rules = uc.rules.RulesFor(req.ServiceID)
	}

	breakdown, err := uc.engine.ComputePrice(
		slot.BasePrice,
		slot.DurationMinutes,
		req.addons(),
		rules,
		pricing.ConditionSet(req.ActiveConditions),
	)
	if err != nil {
		uc.releaseClaim(req.SlotID)
		if errors.Is(err, pricing.ErrInvalidPriceInput) || errors.Is(err, pricing.ErrInvalidRule) {
			uc.logger.Warn("CreateReservation: pricing rejected input for slot id=%s: %v", req.SlotID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidPriceInput, err)
		}
		uc.logger.Error("CreateReservation: pricing failed for slot id=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: compute price: %v", ErrInternal, err)
	}

	// 6. Build and persist the reservation.
	reservation := &domain.Reservation{
		ID:                       uuid.NewString(),
		UserID:                   req.UserID,
		ServiceID:                req.ServiceID,
		SlotID:                   slot.ID,
		ScheduledAt:              scheduledAt(slot),
		Status:                   domain.StatusPending,
		Detail:                   req.Detail,
		SelectedAddons:           req.addonIDs(),
		SpecialRequests:          req.SpecialRequests,
		Pricing:                  *breakdown,
		EstimatedDurationMinutes: slot.DurationMinutes,
	}

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := uc.repo.Create(txCtx, reservation); err != nil {
			return fmt.Errorf("%w: create reservation: %v", ErrInternal, err)
		}
		if uc.slotStore != nil {
			if err := uc.slotStore.SetAvailability(txCtx, slot.ID, false); err != nil {
				return fmt.Errorf("%w: persist slot claim: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		uc.releaseClaim(req.SlotID)
		uc.logger.Error("CreateReservation: persistence failed for slot id=%s: %v", req.SlotID, err)
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation id=%s (user=%s, slot=%s, total=%d)",
		reservation.ID, req.UserID, slot.ID, reservation.Pricing.Total)
	return &Response{Reservation: reservation}, nil
}

// releaseClaim undoes the slot claim on a failed booking.
func (uc *UseCase) releaseClaim(slotID string) {
	if err := uc.cal.Release(slotID); err != nil {
		uc.logger.Error("CreateReservation: failed to release slot id=%s after error: %v", slotID, err)
	}
}
