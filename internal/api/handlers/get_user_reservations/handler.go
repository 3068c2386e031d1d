package get_user_reservations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vitrineapp/VA-BookingService/internal/api/handlers"
	"github.com/vitrineapp/VA-BookingService/internal/service/reservations"
	"github.com/vitrineapp/VA-BookingService/internal/service/reservations/models"
)

const msgInvalidStatus = "invalid status filter"

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

// Handle GET /api/v1/users/{userId}/reservations?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	req := &models.GetUserReservationsRequest{UserID: userID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetUserReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /users/{userId}/reservations - Invalid status: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /users/{userId}/reservations - Failed: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{userId}/reservations - OK: user_id=%s, reservations=%d",
		userID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
