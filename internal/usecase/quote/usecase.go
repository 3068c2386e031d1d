package quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/vitrineapp/VA-BookingService/internal/calendar"
	"github.com/vitrineapp/VA-BookingService/internal/domain"
	"github.com/vitrineapp/VA-BookingService/internal/pricing"
)

// UseCase answers "what would this booking cost right now". Read-only:
// the slot is never claimed.
type UseCase struct {
	cal     SlotCalendar
	catalog ServiceCatalog
	engine  PricingEngine
	rules   PricingRuleSource
	logger  Logger
}

// NewUseCase creates the quote use case.
func NewUseCase(
	cal SlotCalendar,
	catalog ServiceCatalog,
	engine PricingEngine,
	rules PricingRuleSource,
	logger Logger,
) *UseCase {
	return &UseCase{
		cal:     cal,
		catalog: catalog,
		engine:  engine,
		rules:   rules,
		logger:  logger,
	}
}

// Execute prices a (service, slot, addons, conditions) tuple.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("Quote: service=%s, slot=%s, conditions=%v", req.ServiceID, req.SlotID, req.ActiveConditions)

	if req.ServiceID == "" || req.SlotID == "" {
		return nil, fmt.Errorf("%w: serviceID and slotID are required", ErrInvalidInput)
	}

	service, ok := uc.catalog.GetByID(req.ServiceID)
	if !ok {
		uc.logger.Warn("Quote: service id=%s not found", req.ServiceID)
		return nil, ErrServiceNotFound
	}
	if service.BookingFlow == domain.FlowNone {
		uc.logger.Warn("Quote: service id=%s does not take reservations", req.ServiceID)
		return nil, ErrBookingNotSupported
	}

	if req.Detail != nil {
		required := uc.catalog.SupportsDetail(service.Type)
		if !req.Detail.IsConsistent() {
			return nil, fmt.Errorf("%w: detail payload variant does not match its kind", ErrInvalidInput)
		}
		if req.Detail.Kind != required {
			uc.logger.Warn("Quote: detail mismatch for service id=%s: need %s, got %s",
				req.ServiceID, required, req.Detail.Kind)
			return nil, fmt.Errorf("%w: service requires %s detail, got %s", ErrDetailMismatch, required, req.Detail.Kind)
		}
	}

	slot, err := uc.cal.Get(req.SlotID)
	if err != nil {
		if errors.Is(err, calendar.ErrUnknownSlot) {
			uc.logger.Warn("Quote: unknown slot id=%s", req.SlotID)
			return nil, ErrUnknownSlot
		}
		uc.logger.Error("Quote: get slot id=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: get slot: %v", ErrInternal, err)
	}
	if slot.ServiceID != req.ServiceID {
		return nil, fmt.Errorf("%w: slot belongs to another service", ErrInvalidInput)
	}
	if !slot.Available {
		uc.logger.Warn("Quote: slot id=%s already claimed", req.SlotID)
		return nil, ErrSlotUnavailable
	}

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
		if errors.Is(err, pricing.ErrInvalidPriceInput) || errors.Is(err, pricing.ErrInvalidRule) {
			uc.logger.Warn("Quote: pricing rejected input for slot id=%s: %v", req.SlotID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidPriceInput, err)
		}
		uc.logger.Error("Quote: pricing failed for slot id=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: compute price: %v", ErrInternal, err)
	}

	uc.logger.Info("Quote: service=%s slot=%s total=%d (multiplier=%v)",
		req.ServiceID, req.SlotID, breakdown.Total, breakdown.Multiplier)
	return &Response{
		ServiceID: req.ServiceID,
		SlotID:    req.SlotID,
		Breakdown: *breakdown,
	}, nil
}
