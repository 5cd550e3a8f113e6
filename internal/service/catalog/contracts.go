package catalog

import (
	"context"

	"github.com/glowdesk/booking-service/internal/integrations/catalogservice"
)

// CatalogClient интерфейс клиента каталога (прямой или с кешем)
type CatalogClient interface {
	ListServices(ctx context.Context) ([]catalogservice.Service, error)
	ListProfessionals(ctx context.Context) ([]catalogservice.Professional, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
