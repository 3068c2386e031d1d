package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/vitrineapp/VA-BookingService/internal/api/handlers"
	"github.com/vitrineapp/VA-BookingService/internal/domain"
	getAvailableSlots "github.com/vitrineapp/VA-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate         = "invalid or missing date parameter, expected YYYY-MM-DD"
	msgServiceNotFound     = "service not found"
	msgBookingNotSupported = "service does not take reservations"
	msgInvalidInput        = "invalid request parameters"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /services/{serviceId}/available-slots - Invalid date: service_id=%s, error=%v", serviceID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /services/{serviceId}/available-slots - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrBookingNotSupported):
			h.logger.Warn("GET /services/{serviceId}/available-slots - Booking not supported: service_id=%s", serviceID)
			handlers.RespondBadRequest(w, msgBookingNotSupported)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /services/{serviceId}/available-slots - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /services/{serviceId}/available-slots - Failed: service_id=%s, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{serviceId}/available-slots - OK: service_id=%s, date=%s, slots=%d",
		serviceID, r.URL.Query().Get("date"), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
