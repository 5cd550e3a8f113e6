package sessions

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/glowdesk/booking-service/internal/integrations/catalogservice"
	"github.com/glowdesk/booking-service/internal/workflow"
)

// SessionStore интерфейс хранилища сессий.
// Update применяет функцию перехода атомарно.
type SessionStore interface {
	Create(ctx context.Context, sess *workflow.Session) error
	Get(ctx context.Context, id uuid.UUID) (*workflow.Session, error)
	Update(ctx context.Context, id uuid.UUID, fn func(sess *workflow.Session) error) (*workflow.Session, error)
}

// CatalogClient интерфейс клиента каталога для валидации услуг и мастеров
type CatalogClient interface {
	GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
	GetProfessional(ctx context.Context, professionalID int64) (*catalogservice.Professional, error)
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
