package get_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vitrineapp/VA-BookingService/internal/api/handlers"
	"github.com/vitrineapp/VA-BookingService/internal/service/reservations"
)

const msgReservationNotFound = "reservation not found"

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	result, err := h.service.GetByID(r.Context(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{reservationId} - Not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		default:
			h.logger.Error("GET /reservations/{reservationId} - Failed: reservation_id=%s, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{reservationId} - OK: reservation_id=%s", reservationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
