package create_session

import "github.com/glowdesk/booking-service/internal/service/sessions/models"

// CreateSessionRequest тело запроса создания сессии.
// PreselectedServiceID позволяет начать бронирование со страницы услуги,
// минуя шаг выбора услуг.
type CreateSessionRequest struct {
	PreselectedServiceID *int64 `json:"preselectedServiceId,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateSessionRequest) ToServiceRequest(customerName string) *models.StartSessionRequest {
	return &models.StartSessionRequest{
		CustomerName:         customerName,
		PreselectedServiceID: r.PreselectedServiceID,
	}
}
