package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/glowdesk/booking-service/internal/domain"
	"github.com/glowdesk/booking-service/internal/infra/sessionstore"
	catalogClient "github.com/glowdesk/booking-service/internal/integrations/catalogservice"
	"github.com/glowdesk/booking-service/internal/service/sessions/models"
	"github.com/glowdesk/booking-service/internal/workflow"
)

// Service управляет жизненным циклом сессий бронирования: создание,
// корзина услуг и переходы конечного автомата. Подтверждение сессии,
// создающее бронирование, живет в usecase/confirm_booking.
type Service struct {
	store        SessionStore
	catalog      CatalogClient
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(store SessionStore, catalog CatalogClient, logger Logger) *Service {
	return &Service{
		store:        store,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// StartSession создает новую сессию бронирования.
// С предвыбранной услугой сессия начинается сразу с выбора слота.
func (s *Service) StartSession(ctx context.Context, req *models.StartSessionRequest) (*models.SessionResponse, error) {
	if req.CustomerName == "" || len(req.CustomerName) > domain.MaxCustomerNameLength {
		return nil, fmt.Errorf("%w: invalid customer name", ErrInvalidInput)
	}

	now := s.timeProvider.Now()

	var sess *workflow.Session
	if req.PreselectedServiceID != nil {
		svc, err := s.fetchService(ctx, *req.PreselectedServiceID)
		if err != nil {
			return nil, err
		}

		sess, err = workflow.NewSessionWithService(req.CustomerName, *svc, now)
		if err != nil {
			s.logger.Warn("StartSession: preselected service id=%d rejected: %v", *req.PreselectedServiceID, err)
			return nil, err
		}
	} else {
		sess = workflow.NewSession(req.CustomerName, now)
	}

	if err := s.store.Create(ctx, sess); err != nil {
		s.logger.Error("StartSession: failed to store session: %v", err)
		return nil, fmt.Errorf("%w: store session: %v", ErrInternal, err)
	}

	s.logger.Info("StartSession: session=%s created for customer=%s, state=%s",
		sess.ID, req.CustomerName, sess.State)
	return models.FromSession(sess), nil
}

// GetSession возвращает снапшот сессии клиента
func (s *Service) GetSession(ctx context.Context, id uuid.UUID, customerName string) (*models.SessionResponse, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: get session: %v", ErrInternal, err)
	}

	if sess.CustomerName != customerName {
		s.logger.Warn("GetSession: access denied for customer=%s to session=%s", customerName, id)
		return nil, ErrAccessDenied
	}

	return models.FromSession(sess), nil
}

// ToggleService добавляет услугу в корзину сессии или убирает её.
// Услуга валидируется через каталог; неактивные услуги невыбираемы.
func (s *Service) ToggleService(ctx context.Context, req *models.ToggleServiceRequest) (*models.SessionResponse, error) {
	svc, err := s.fetchService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()

	sess, err := s.update(ctx, req.SessionID, req.CustomerName, func(sess *workflow.Session) error {
		return sess.ToggleService(*svc, now)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ToggleService: session=%s service=%d, selection size=%d",
		req.SessionID, req.ServiceID, sess.Selection.Count())
	return models.FromSession(sess), nil
}

// ApplyTransition выполняет переход состояния сессии
func (s *Service) ApplyTransition(ctx context.Context, req *models.TransitionRequest) (*models.SessionResponse, error) {
	now := s.timeProvider.Now()

	var transition func(sess *workflow.Session) error
	switch req.Action {
	case models.ActionProceed:
		transition = func(sess *workflow.Session) error { return sess.ProceedToSlotSelection(now) }
	case models.ActionModifyServices:
		transition = func(sess *workflow.Session) error { return sess.ModifyServices(now) }
	case models.ActionCancelSlot:
		transition = func(sess *workflow.Session) error { return sess.CancelConfirmation(now) }
	case models.ActionReset:
		transition = func(sess *workflow.Session) error { return sess.Reset(now) }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
	}

	sess, err := s.update(ctx, req.SessionID, req.CustomerName, transition)
	if err != nil {
		return nil, err
	}

	s.logger.Info("ApplyTransition: session=%s action=%s -> state=%s", req.SessionID, req.Action, sess.State)
	return models.FromSession(sess), nil
}

// StageSlot фиксирует выбранный слот и переводит сессию к подтверждению.
// Мастер валидируется через справочник.
func (s *Service) StageSlot(ctx context.Context, req *models.StageSlotRequest) (*models.SessionResponse, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	professional, err := s.catalog.GetProfessional(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrProfessionalNotFound) {
			s.logger.Warn("StageSlot: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("StageSlot: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: get professional: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	slot := workflow.StagedSlot{
		Date:             req.Date,
		StartTime:        req.StartTime,
		ProfessionalID:   professional.ID,
		ProfessionalName: professional.DisplayName,
	}

	sess, err := s.update(ctx, req.SessionID, req.CustomerName, func(sess *workflow.Session) error {
		return sess.StageSlot(slot, now)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("StageSlot: session=%s staged %s %s professional=%d",
		req.SessionID, req.Date.Format(domain.DateFormat), req.StartTime, req.ProfessionalID)
	return models.FromSession(sess), nil
}

// update применяет переход к сессии с проверкой владельца
func (s *Service) update(ctx context.Context, id uuid.UUID, customerName string, fn func(sess *workflow.Session) error) (*workflow.Session, error) {
	sess, err := s.store.Update(ctx, id, func(sess *workflow.Session) error {
		if sess.CustomerName != customerName {
			return ErrAccessDenied
		}
		return fn(sess)
	})
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		// Ошибки guard'ов workflow и ErrAccessDenied отдаем как есть
		return nil, err
	}
	return sess, nil
}

func (s *Service) fetchService(ctx context.Context, serviceID int64) (*domain.Service, error) {
	svc, err := s.catalog.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			s.logger.Warn("fetchService: service id=%d not found", serviceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("fetchService: failed to get service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: get service: %v", ErrInternal, err)
	}

	domainSvc := svc.ToDomain()
	return &domainSvc, nil
}
