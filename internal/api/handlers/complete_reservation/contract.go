package complete_reservation

import (
	"context"

	"github.com/vitrineapp/VA-BookingService/internal/service/reservations/models"
)

type ReservationService interface {
	Complete(ctx context.Context, id string) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
