package pricing

import (
	"fmt"
	"math"

	"github.com/vitrineapp/VA-BookingService/internal/domain"
)

// Engine computes pricing breakdowns. It is stateless and pure: no locking,
// no I/O, safe for concurrent use.
type Engine struct{}

// NewEngine creates a pricing engine.
func NewEngine() *Engine {
	return &Engine{}
}

// ComputePrice combines a base price with the add-on total and every
// applicable conditional multiplier.
//
// Applicable rules are those whose condition appears in activeConditions;
// rule order is irrelevant. Multipliers compose multiplicatively, so an
// empty applicable set yields 1.0. Rounding is half-up to the currency
// minor unit and happens exactly once, on the final amount, never per rule.
func (e *Engine) ComputePrice(
	base domain.Money,
	durationMinutes int,
	addons []domain.Addon,
	rules []domain.PricingRule,
	activeConditions map[string]struct{},
) (*domain.PricingBreakdown, error) {
	if base < 0 {
		return nil, fmt.Errorf("%w: base price %d is negative", ErrInvalidPriceInput, base)
	}
	if durationMinutes < 0 {
		return nil, fmt.Errorf("%w: duration %d is negative", ErrInvalidPriceInput, durationMinutes)
	}

	var addonsTotal domain.Money
	for _, addon := range addons {
		if addon.Price < 0 {
			return nil, fmt.Errorf("%w: addon %q price %d is negative", ErrInvalidPriceInput, addon.ID, addon.Price)
		}
		addonsTotal += addon.Price
	}

	multiplier := 1.0
	for _, rule := range rules {
		if rule.Multiplier <= 0 {
			return nil, fmt.Errorf("%w: rule %q multiplier %v is not positive", ErrInvalidRule, rule.ID, rule.Multiplier)
		}
		if _, active := activeConditions[rule.Condition]; active {
			multiplier *= rule.Multiplier
		}
	}

	total := roundHalfUp(float64(base+addonsTotal) * multiplier)

	return &domain.PricingBreakdown{
		Base:       base,
		Addons:     addonsTotal,
		Multiplier: multiplier,
		Total:      total,
	}, nil
}

// ConditionSet builds the membership set the engine consumes from the
// caller-supplied condition list. Duplicates collapse.
func ConditionSet(conditions []string) map[string]struct{} {
	set := make(map[string]struct{}, len(conditions))
	for _, c := range conditions {
		set[c] = struct{}{}
	}
	return set
}

// roundHalfUp rounds to the nearest minor unit, ties away from zero is not
// needed here: amounts are non-negative by the input checks above.
func roundHalfUp(v float64) domain.Money {
	return domain.Money(math.Floor(v + 0.5))
}
