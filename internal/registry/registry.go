package registry

import (
	"fmt"

	"github.com/vitrineapp/VA-BookingService/internal/domain"
)

// Registry is the static service catalog. Built once at process start from
// configuration and immutable afterwards, so all methods are safe for
// concurrent use without locking.
type Registry struct {
	configs map[domain.ServiceType]domain.ServiceConfig
}

// New builds a registry from the configured catalog. Every vertical gets an
// entry: configured services override the built-in defaults, missing ones
// fall back to them, which is what makes Get a total function.
func New(configs []domain.ServiceConfig) (*Registry, error) {
	catalog := make(map[domain.ServiceType]domain.ServiceConfig, len(domain.AllServiceTypes))
	for _, t := range domain.AllServiceTypes {
		catalog[t] = defaultCatalog[t]
	}

	for _, cfg := range configs {
		if _, ok := domain.ParseServiceType(string(cfg.Type)); !ok {
			return nil, fmt.Errorf("registry: unknown service type %q", cfg.Type)
		}
		if cfg.ID != string(cfg.Type) {
			return nil, fmt.Errorf("registry: service id %q must equal its type %q", cfg.ID, cfg.Type)
		}
		catalog[cfg.Type] = cfg
	}

	return &Registry{configs: catalog}, nil
}

// Get returns the configuration of a vertical. Total: every service type
// has a config by construction.
func (r *Registry) Get(t domain.ServiceType) domain.ServiceConfig {
	return r.configs[t]
}

// GetByID resolves a service by its id (which equals its type).
func (r *Registry) GetByID(id string) (domain.ServiceConfig, bool) {
	t, ok := domain.ParseServiceType(id)
	if !ok {
		return domain.ServiceConfig{}, false
	}
	return r.configs[t], true
}

// All returns the full catalog in the canonical vertical order.
func (r *Registry) All() []domain.ServiceConfig {
	out := make([]domain.ServiceConfig, 0, len(domain.AllServiceTypes))
	for _, t := range domain.AllServiceTypes {
		out = append(out, r.configs[t])
	}
	return out
}

// HasFeature tests raw feature-set membership for a vertical.
func (r *Registry) HasFeature(t domain.ServiceType, feature string) bool {
	cfg := r.Get(t)
	return cfg.HasFeature(feature)
}

// SupportsDetail derives which detail payload the vertical's booking flow
// requires.
func (r *Registry) SupportsDetail(t domain.ServiceType) domain.DetailKind {
	cfg := r.Get(t)
	return cfg.DetailKind()
}

// defaultCatalog mirrors the platform's shipped site configurations.
var defaultCatalog = map[domain.ServiceType]domain.ServiceConfig{
	domain.ServiceLavage: {
		ID:          "lavage",
		Name:        "Lavage Auto",
		Type:        domain.ServiceLavage,
		Template:    domain.TemplateCrsine,
		Features:    []string{"vehicle-form", "dynamic-pricing", "qr-tracking"},
		BookingFlow: domain.FlowAdvanced,
		HasGallery:  true,
		HasReviews:  true,
	},
	domain.ServiceRestaurant: {
		ID:          "restaurant",
		Name:        "Restaurant",
		Type:        domain.ServiceRestaurant,
		Template:    domain.TemplateTastyc,
		Features:    []string{"table-selection", "dynamic-pricing"},
		BookingFlow: domain.FlowAdvanced,
		HasMenu:     true,
		HasGallery:  true,
		HasReviews:  true,
	},
	domain.ServiceFastfood: {
		ID:          "fastfood",
		Name:        "Fast-Food",
		Type:        domain.ServiceFastfood,
		Template:    domain.TemplateTastyc,
		Features:    []string{"qr-tracking"},
		BookingFlow: domain.FlowSimple,
		HasMenu:     true,
	},
	domain.ServiceCoiffure: {
		ID:          "coiffure",
		Name:        "Salon de Coiffure",
		Type:        domain.ServiceCoiffure,
		Template:    domain.TemplateHybrid,
		Features:    []string{"vehicle-form", "dynamic-pricing"},
		BookingFlow: domain.FlowAdvanced,
		HasGallery:  true,
		HasReviews:  true,
	},
	domain.ServiceBoutique: {
		ID:          "boutique",
		Name:        "Boutique",
		Type:        domain.ServiceBoutique,
		Template:    domain.TemplateCrsine,
		Features:    []string{},
		BookingFlow: domain.FlowNone,
		HasGallery:  true,
	},
}
