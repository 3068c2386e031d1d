package domain

// Money is an amount in the tenant's currency minor unit (e.g. cents).
// Prices never carry fractions of the minor unit; rounding happens exactly
// once, when the pricing engine produces a total.
type Money int64

// PricingRule is one conditional multiplier. Rules are static per-tenant
// configuration loaded alongside the service catalog.
type PricingRule struct {
	ID         string
	Condition  string
	Multiplier float64
}

// IsNoOp reports whether applying the rule leaves the price unchanged.
func (r *PricingRule) IsNoOp() bool {
	return r.Multiplier == 1.0
}

// Addon is a priced extra attached to a booking.
type Addon struct {
	ID    string
	Name  string
	Price Money
}

// PricingBreakdown is the itemized result of pricing one booking.
// Invariant: Total == round((Base + Addons) * Multiplier), rounded half-up
// to the minor unit.
type PricingBreakdown struct {
	Base       Money
	Addons     Money
	Multiplier float64
	Total      Money
}
