package catalog

import (
	"context"

	"github.com/glowdesk/booking-service/internal/domain"
)

// Service отдает каталог услуг и справочник мастеров.
//
// Каталог — внешние данные: при недоступности CatalogService сервис
// деградирует до пустого каталога (услуги невыбираемы), а не падает.
type Service struct {
	client CatalogClient
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(client CatalogClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// ListActiveServices возвращает только активные услуги каталога.
// Фильтрация по активности происходит здесь, до слоя выбора услуг.
func (s *Service) ListActiveServices(ctx context.Context) ([]domain.Service, error) {
	services, err := s.client.ListServices(ctx)
	if err != nil {
		s.logger.Error("ListActiveServices: catalog unavailable, serving empty catalog: %v", err)
		return []domain.Service{}, nil
	}

	active := make([]domain.Service, 0, len(services))
	for _, svc := range services {
		if svc.IsActive {
			active = append(active, svc.ToDomain())
		}
	}

	s.logger.Info("ListActiveServices: %d of %d services active", len(active), len(services))
	return active, nil
}

// ListProfessionals возвращает справочник мастеров.
// При недоступности справочника возвращается пустой список.
func (s *Service) ListProfessionals(ctx context.Context) ([]domain.Professional, error) {
	professionals, err := s.client.ListProfessionals(ctx)
	if err != nil {
		s.logger.Error("ListProfessionals: directory unavailable, serving empty list: %v", err)
		return []domain.Professional{}, nil
	}

	out := make([]domain.Professional, len(professionals))
	for i, p := range professionals {
		out[i] = p.ToDomain()
	}

	return out, nil
}
