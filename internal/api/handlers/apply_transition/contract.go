package apply_transition

import (
	"context"

	"github.com/glowdesk/booking-service/internal/service/sessions/models"
)

// SessionService интерфейс сервиса сессий
type SessionService interface {
	ApplyTransition(ctx context.Context, req *models.TransitionRequest) (*models.SessionResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
