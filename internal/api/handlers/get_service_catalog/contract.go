package get_service_catalog

import (
	"github.com/vitrineapp/VA-BookingService/internal/domain"
)

type ServiceCatalog interface {
	All() []domain.ServiceConfig
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
