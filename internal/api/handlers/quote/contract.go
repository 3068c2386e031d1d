package quote

import (
	"context"

	quoteUC "github.com/vitrineapp/VA-BookingService/internal/usecase/quote"
)

type QuoteUseCase interface {
	Execute(ctx context.Context, req *quoteUC.Request) (*quoteUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
