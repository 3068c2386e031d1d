package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vitrineapp/VA-BookingService/internal/api/handlers"
	"github.com/vitrineapp/VA-BookingService/internal/api/middleware"
	"github.com/vitrineapp/VA-BookingService/internal/service/reservations"
	"github.com/vitrineapp/VA-BookingService/internal/service/reservations/models"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgReservationNotFound = "reservation not found"
	msgInvalidTransition   = "reservation cannot be cancelled in its current state"
	msgInvalidInput        = "invalid cancellation data"
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

// Handle PATCH /api/v1/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	var req CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{reservationId}/cancel - Invalid request body: reservation_id=%s, error=%v",
			reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID := middleware.UserID(r.Context())

	result, err := h.service.Cancel(r.Context(), reservationID, &models.CancelReservationRequest{
		UserID:             userID,
		CancellationReason: req.CancellationReason,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{reservationId}/cancel - Not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrInvalidTransition):
			h.logger.Warn("PATCH /reservations/{reservationId}/cancel - Invalid transition: reservation_id=%s", reservationID)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{reservationId}/cancel - Invalid input: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /reservations/{reservationId}/cancel - Failed: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{reservationId}/cancel - OK: reservation_id=%s, user_id=%s", reservationID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
