package complete_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vitrineapp/VA-BookingService/internal/api/handlers"
	"github.com/vitrineapp/VA-BookingService/internal/service/reservations"
)

const (
	msgReservationNotFound = "reservation not found"
	msgInvalidTransition   = "reservation cannot be completed in its current state"
)

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

// Handle PATCH /api/v1/reservations/{reservationId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	result, err := h.service.Complete(r.Context(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{reservationId}/complete - Not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrInvalidTransition):
			h.logger.Warn("PATCH /reservations/{reservationId}/complete - Invalid transition: reservation_id=%s", reservationID)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /reservations/{reservationId}/complete - Failed: reservation_id=%s, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{reservationId}/complete - OK: reservation_id=%s", reservationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
