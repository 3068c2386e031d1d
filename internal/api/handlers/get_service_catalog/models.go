package get_service_catalog

import (
	"github.com/vitrineapp/VA-BookingService/internal/domain"
)

// ServiceResponse is one catalog entry on the wire.
type ServiceResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Template    string   `json:"template"`
	Features    []string `json:"features"`
	BookingFlow string   `json:"bookingFlow"`
	HasMenu     bool     `json:"hasMenu"`
	HasGallery  bool     `json:"hasGallery"`
	HasReviews  bool     `json:"hasReviews"`
}

// CatalogResponse HTTP response model.
type CatalogResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainConfigs converts catalog entries into the HTTP model.
func FromDomainConfigs(configs []domain.ServiceConfig) *CatalogResponse {
	services := make([]ServiceResponse, 0, len(configs))
	for _, cfg := range configs {
		services = append(services, ServiceResponse{
			ID:          cfg.ID,
			Name:        cfg.Name,
			Type:        string(cfg.Type),
			Template:    string(cfg.Template),
			Features:    append([]string{}, cfg.Features...),
			BookingFlow: string(cfg.BookingFlow),
			HasMenu:     cfg.HasMenu,
			HasGallery:  cfg.HasGallery,
			HasReviews:  cfg.HasReviews,
		})
	}
	return &CatalogResponse{Services: services}
}
