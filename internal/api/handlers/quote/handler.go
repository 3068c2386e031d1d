package quote

import (
	"errors"
	"net/http"

	"github.com/vitrineapp/VA-BookingService/internal/api/handlers"
	quoteUC "github.com/vitrineapp/VA-BookingService/internal/usecase/quote"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgServiceNotFound     = "service not found"
	msgBookingNotSupported = "service does not take reservations"
	msgUnknownSlot         = "slot not found"
	msgSlotUnavailable     = "selected time slot is not available"
	msgDetailMismatch      = "reservation details do not match the service"
	msgInvalidPriceInput   = "invalid pricing input"
	msgInvalidInput        = "invalid quote data"
)

type Handler struct {
	useCase QuoteUseCase
	logger  Logger
}

func NewHandler(useCase QuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /quotes - Failed to convert request: service_id=%s, error=%v", req.ServiceID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quoteUC.ErrServiceNotFound):
			h.logger.Warn("POST /quotes - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, quoteUC.ErrBookingNotSupported):
			h.logger.Warn("POST /quotes - Booking not supported: service_id=%s", req.ServiceID)
			handlers.RespondBadRequest(w, msgBookingNotSupported)

		case errors.Is(err, quoteUC.ErrUnknownSlot):
			h.logger.Warn("POST /quotes - Unknown slot: slot_id=%s", req.SlotID)
			handlers.RespondNotFound(w, msgUnknownSlot)

		case errors.Is(err, quoteUC.ErrSlotUnavailable):
			h.logger.Warn("POST /quotes - Slot unavailable: slot_id=%s", req.SlotID)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, quoteUC.ErrDetailMismatch):
			h.logger.Warn("POST /quotes - Detail mismatch: service_id=%s", req.ServiceID)
			handlers.RespondBadRequest(w, msgDetailMismatch)

		case errors.Is(err, quoteUC.ErrInvalidPriceInput):
			h.logger.Warn("POST /quotes - Invalid price input: slot_id=%s", req.SlotID)
			handlers.RespondBadRequest(w, msgInvalidPriceInput)

		case errors.Is(err, quoteUC.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /quotes - Failed to compute quote: service_id=%s, slot_id=%s, error=%v",
				req.ServiceID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote computed: service_id=%s, slot_id=%s, total=%d",
		result.ServiceID, result.SlotID, int64(result.Breakdown.Total))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
