package confirm_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/glowdesk/booking-service/internal/domain"
	"github.com/glowdesk/booking-service/internal/workflow"
)

// SessionStore интерфейс хранилища сессий.
// Update применяет переход к сессии атомарно под блокировкой хранилища.
type SessionStore interface {
	Update(ctx context.Context, id uuid.UUID, fn func(sess *workflow.Session) error) (*workflow.Session, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetForRange(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

// Metrics интерфейс бизнес-метрик подтверждения
type Metrics interface {
	IncBookingConfirmed()
	IncBookingConflict()
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// NopMetrics заглушка метрик для случая, когда метрики выключены
type NopMetrics struct{}

func (NopMetrics) IncBookingConfirmed() {}
func (NopMetrics) IncBookingConflict()  {}
