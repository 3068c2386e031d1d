package cancel_reservation

import (
	"context"

	"github.com/vitrineapp/VA-BookingService/internal/service/reservations/models"
)

type ReservationService interface {
	Cancel(ctx context.Context, id string, req *models.CancelReservationRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
