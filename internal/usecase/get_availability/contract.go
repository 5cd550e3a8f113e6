package get_availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/glowdesk/booking-service/internal/domain"
	"github.com/glowdesk/booking-service/internal/integrations/catalogservice"
	"github.com/glowdesk/booking-service/internal/workflow"
)

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Get(ctx context.Context, id uuid.UUID) (*workflow.Session, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetForRange возвращает снапшот бронирований за календарный период
	GetForRange(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
}

// TransactionManager выполняет чтение снапшота в read-only транзакции,
// чтобы сетка строилась по согласованному срезу бронирований
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Directory интерфейс справочника мастеров
type Directory interface {
	ListProfessionals(ctx context.Context) ([]catalogservice.Professional, error)
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
