package create_reservation

import (
	"errors"
	"net/http"

	"github.com/vitrineapp/VA-BookingService/internal/api/handlers"
	"github.com/vitrineapp/VA-BookingService/internal/api/middleware"
	svcmodels "github.com/vitrineapp/VA-BookingService/internal/service/reservations/models"
	createReservation "github.com/vitrineapp/VA-BookingService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgServiceNotFound     = "service not found"
	msgBookingNotSupported = "service does not take reservations"
	msgUnknownSlot         = "slot not found"
	msgSlotUnavailable     = "selected time slot is not available"
	msgDetailMismatch      = "reservation details do not match the service"
	msgInvalidPriceInput   = "invalid pricing input"
	msgInvalidInput        = "invalid reservation data"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID := middleware.UserID(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to convert request: user_id=%s, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrServiceNotFound):
			h.logger.Warn("POST /reservations - Service not found: user_id=%s, service_id=%s", userID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createReservation.ErrBookingNotSupported):
			h.logger.Warn("POST /reservations - Booking not supported: user_id=%s, service_id=%s", userID, req.ServiceID)
			handlers.RespondBadRequest(w, msgBookingNotSupported)

		case errors.Is(err, createReservation.ErrUnknownSlot):
			h.logger.Warn("POST /reservations - Unknown slot: user_id=%s, slot_id=%s", userID, req.SlotID)
			handlers.RespondNotFound(w, msgUnknownSlot)

		case errors.Is(err, createReservation.ErrSlotUnavailable):
			h.logger.Warn("POST /reservations - Slot unavailable: user_id=%s, slot_id=%s", userID, req.SlotID)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, createReservation.ErrDetailMismatch):
			h.logger.Warn("POST /reservations - Detail mismatch: user_id=%s, service_id=%s", userID, req.ServiceID)
			handlers.RespondBadRequest(w, msgDetailMismatch)

		case errors.Is(err, createReservation.ErrInvalidPriceInput):
			h.logger.Warn("POST /reservations - Invalid price input: user_id=%s, slot_id=%s", userID, req.SlotID)
			handlers.RespondBadRequest(w, msgInvalidPriceInput)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%s, service_id=%s, error=%v",
				userID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := svcmodels.FromDomainReservation(result.Reservation)

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%s, user_id=%s, service_id=%s",
		result.Reservation.ID, userID, req.ServiceID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
