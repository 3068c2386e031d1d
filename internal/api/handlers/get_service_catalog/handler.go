package get_service_catalog

import (
	"net/http"

	"github.com/vitrineapp/VA-BookingService/internal/api/handlers"
)

type Handler struct {
	catalog ServiceCatalog
	logger  Logger
}

func NewHandler(catalog ServiceCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	configs := h.catalog.All()

	h.logger.Info("GET /services - OK: services=%d", len(configs))
	handlers.RespondJSON(w, http.StatusOK, FromDomainConfigs(configs))
}
