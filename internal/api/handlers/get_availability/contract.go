package get_availability

import (
	"context"
	"time"

	getAvailability "github.com/glowdesk/booking-service/internal/usecase/get_availability"
)

// GetAvailabilityUseCase интерфейс use case сетки доступности
type GetAvailabilityUseCase interface {
	Execute(ctx context.Context, req getAvailability.Request) (*getAvailability.Response, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
