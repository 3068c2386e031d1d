package pricing

import "github.com/vitrineapp/VA-BookingService/internal/domain"

// RuleSet holds the tenant's pricing rules, loaded once at process start.
// Rules are either global or scoped to one service; RulesFor returns the
// union. Immutable after construction.
type RuleSet struct {
	global    []domain.PricingRule
	byService map[string][]domain.PricingRule
}

// ScopedRule is one configured rule with an optional service scope.
// An empty ServiceID means the rule applies to every service.
type ScopedRule struct {
	ServiceID string
	Rule      domain.PricingRule
}

// NewRuleSet builds a rule set from configuration.
func NewRuleSet(rules []ScopedRule) *RuleSet {
	rs := &RuleSet{
		byService: make(map[string][]domain.PricingRule),
	}
	for _, r := range rules {
		if r.ServiceID == "" {
			rs.global = append(rs.global, r.Rule)
			continue
		}
		rs.byService[r.ServiceID] = append(rs.byService[r.ServiceID], r.Rule)
	}
	return rs
}

// RulesFor returns the rules applicable to a service: global rules plus
// the service-scoped ones. The order is stable but irrelevant to pricing.
func (rs *RuleSet) RulesFor(serviceID string) []domain.PricingRule {
	scoped := rs.byService[serviceID]
	out := make([]domain.PricingRule, 0, len(rs.global)+len(scoped))
	out = append(out, rs.global...)
	out = append(out, scoped...)
	return out
}
