package get_services

import (
	"context"

	"github.com/glowdesk/booking-service/internal/domain"
)

// CatalogService интерфейс сервиса каталога
type CatalogService interface {
	ListActiveServices(ctx context.Context) ([]domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
