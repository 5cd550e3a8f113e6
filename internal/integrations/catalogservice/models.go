package catalogservice

import "github.com/glowdesk/booking-service/internal/domain"

// Service модель услуги из CatalogService
type Service struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	IsActive        bool    `json:"is_active"`
}

// ToDomain конвертирует модель клиента в доменную
func (s Service) ToDomain() domain.Service {
	return domain.Service{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		Category:        s.Category,
		Active:          s.IsActive,
	}
}

// Professional модель мастера из справочника CatalogService
type Professional struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
}

// ToDomain конвертирует модель клиента в доменную
func (p Professional) ToDomain() domain.Professional {
	return domain.Professional{
		ID:          p.ID,
		DisplayName: p.DisplayName,
	}
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
