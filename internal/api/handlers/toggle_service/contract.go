package toggle_service

import (
	"context"

	"github.com/glowdesk/booking-service/internal/service/sessions/models"
)

// SessionService интерфейс сервиса сессий
type SessionService interface {
	ToggleService(ctx context.Context, req *models.ToggleServiceRequest) (*models.SessionResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
