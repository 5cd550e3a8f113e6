package get_services

import "github.com/glowdesk/booking-service/internal/domain"

// ServiceResponse услуга каталога в HTTP ответе
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
}

// ServiceListResponse список услуг каталога
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainServices конвертирует доменные услуги в HTTP ответ
func FromDomainServices(services []domain.Service) *ServiceListResponse {
	out := make([]ServiceResponse, len(services))
	for i, svc := range services {
		out[i] = ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			Description:     svc.Description,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
			Category:        svc.Category,
		}
	}
	return &ServiceListResponse{Services: out}
}
