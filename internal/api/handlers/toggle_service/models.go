package toggle_service

import (
	"github.com/google/uuid"

	"github.com/glowdesk/booking-service/internal/service/sessions/models"
)

// ToggleServiceRequest тело запроса переключения услуги в корзине
type ToggleServiceRequest struct {
	ServiceID int64 `json:"serviceId"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ToggleServiceRequest) ToServiceRequest(sessionID uuid.UUID, customerName string) *models.ToggleServiceRequest {
	return &models.ToggleServiceRequest{
		SessionID:    sessionID,
		CustomerName: customerName,
		ServiceID:    r.ServiceID,
	}
}
