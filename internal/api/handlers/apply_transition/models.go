package apply_transition

import (
	"github.com/google/uuid"

	"github.com/glowdesk/booking-service/internal/service/sessions/models"
)

// TransitionRequest тело запроса перехода состояния сессии.
// Допустимые действия: proceed, modify_services, cancel_slot, reset.
type TransitionRequest struct {
	Action string `json:"action"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *TransitionRequest) ToServiceRequest(sessionID uuid.UUID, customerName string) *models.TransitionRequest {
	return &models.TransitionRequest{
		SessionID:    sessionID,
		CustomerName: customerName,
		Action:       r.Action,
	}
}
