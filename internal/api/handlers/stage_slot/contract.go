package stage_slot

import (
	"context"

	"github.com/glowdesk/booking-service/internal/service/sessions/models"
)

// SessionService интерфейс сервиса сессий
type SessionService interface {
	StageSlot(ctx context.Context, req *models.StageSlotRequest) (*models.SessionResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
