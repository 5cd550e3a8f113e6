package get_session

import (
	"context"

	"github.com/google/uuid"

	"github.com/glowdesk/booking-service/internal/service/sessions/models"
)

// SessionService интерфейс сервиса сессий
type SessionService interface {
	GetSession(ctx context.Context, id uuid.UUID, customerName string) (*models.SessionResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
