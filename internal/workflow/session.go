// Package workflow моделирует линейный процесс бронирования как явный
// конечный автомат:
//
//	SelectingServices → SelectingSlot → Confirming → Completed
//
// Каждый переход проверяет guard текущего состояния, поэтому
// некорректные комбинации (подтверждение без слота, пустая корзина
// на шаге выбора времени) непредставимы. Единственный цикл — полный
// сброс из Completed в начальное состояние.
package workflow

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/glowdesk/booking-service/internal/domain"
	"github.com/glowdesk/booking-service/pkg/types"
)

// State состояние сессии бронирования
type State string

const (
	StateSelectingServices State = "selecting_services"
	StateSelectingSlot     State = "selecting_slot"
	StateConfirming        State = "confirming"
	StateCompleted         State = "completed"
)

// StagedSlot слот, выбранный клиентом и ожидающий подтверждения
type StagedSlot struct {
	Date             time.Time
	StartTime        types.TimeString
	ProfessionalID   int64
	ProfessionalName string
}

// Session одна сессия процесса бронирования.
// Методы не потокобезопасны: атомарность переходов обеспечивает
// хранилище сессий (sessionstore), выполняющее их под своей блокировкой.
type Session struct {
	ID           uuid.UUID
	CustomerName string

	State     State
	Selection domain.Selection
	Staged    *StagedSlot

	// Booking результат успешно завершенной сессии
	Booking *domain.Booking

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession создает сессию в начальном состоянии выбора услуг
func NewSession(customerName string, now time.Time) *Session {
	return &Session{
		ID:           uuid.New(),
		CustomerName: customerName,
		State:        StateSelectingServices,
		Selection:    domain.NewSelection(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewSessionWithService создает сессию с предвыбранной услугой.
// Корзина уже непуста, поэтому сессия начинается сразу с выбора слота.
func NewSessionWithService(customerName string, svc domain.Service, now time.Time) (*Session, error) {
	if !svc.Active {
		return nil, ErrInactiveService
	}

	s := NewSession(customerName, now)
	s.Selection = domain.NewSelection(svc)
	s.State = StateSelectingSlot
	return s, nil
}

// ToggleService добавляет услугу в корзину или убирает её.
// Допустимо только в состоянии выбора услуг.
func (s *Session) ToggleService(svc domain.Service, now time.Time) error {
	if s.State != StateSelectingServices {
		return fmt.Errorf("%w: state=%s", ErrSelectionLocked, s.State)
	}
	if !svc.Active && !s.Selection.Contains(svc.ID) {
		return ErrInactiveService
	}

	s.Selection = s.Selection.Toggle(svc)
	s.UpdatedAt = now
	return nil
}

// ProceedToSlotSelection переходит к выбору слота.
// Guard: в корзине должна быть хотя бы одна услуга.
func (s *Session) ProceedToSlotSelection(now time.Time) error {
	if s.State != StateSelectingServices {
		return fmt.Errorf("%w: proceed from state=%s", ErrInvalidTransition, s.State)
	}
	if s.Selection.IsEmpty() {
		return ErrEmptySelection
	}

	s.State = StateSelectingSlot
	s.UpdatedAt = now
	return nil
}

// ModifyServices возвращает сессию к выбору услуг.
// Выбранный слот сбрасывается, корзина сохраняется.
func (s *Session) ModifyServices(now time.Time) error {
	if s.State != StateSelectingSlot {
		return fmt.Errorf("%w: modify services from state=%s", ErrInvalidTransition, s.State)
	}

	s.Staged = nil
	s.State = StateSelectingServices
	s.UpdatedAt = now
	return nil
}

// StageSlot фиксирует выбранный слот и открывает подтверждение
func (s *Session) StageSlot(slot StagedSlot, now time.Time) error {
	if s.State != StateSelectingSlot {
		return fmt.Errorf("%w: stage slot from state=%s", ErrInvalidTransition, s.State)
	}

	staged := slot
	s.Staged = &staged
	s.State = StateConfirming
	s.UpdatedAt = now
	return nil
}

// CancelConfirmation отменяет подтверждение и возвращает сессию
// к выбору слота. Выбранный слот сбрасывается.
func (s *Session) CancelConfirmation(now time.Time) error {
	if s.State != StateConfirming {
		return fmt.Errorf("%w: cancel confirmation from state=%s", ErrInvalidTransition, s.State)
	}

	s.Staged = nil
	s.State = StateSelectingSlot
	s.UpdatedAt = now
	return nil
}

// Confirm принимает подтверждение: собирает итоговое бронирование из
// корзины и выбранного слота и переводит сессию в Completed.
//
// Сессия покидает Confirming на первой принятой команде, поэтому
// повторный confirm (двойной клик) получает ErrNoPendingConfirmation
// и второе бронирование не возникает.
func (s *Session) Confirm(now time.Time) (*domain.Booking, error) {
	if s.State != StateConfirming {
		return nil, fmt.Errorf("%w: state=%s", ErrNoPendingConfirmation, s.State)
	}
	if s.Staged == nil {
		return nil, ErrNoStagedSlot
	}
	if s.Selection.IsEmpty() {
		return nil, ErrEmptySelection
	}

	services := s.Selection.Services()
	booked := make([]domain.BookedService, len(services))
	for i, svc := range services {
		booked[i] = domain.BookedService{
			ServiceID:       svc.ID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		}
	}

	booking := &domain.Booking{
		Number:           uuid.New(),
		CustomerName:     s.CustomerName,
		ProfessionalID:   s.Staged.ProfessionalID,
		ProfessionalName: s.Staged.ProfessionalName,
		BookingDate:      s.Staged.Date,
		StartTime:        s.Staged.StartTime,
		DurationMinutes:  s.Selection.TotalDurationMinutes(),
		Services:         booked,
		TotalPrice:       s.Selection.TotalPrice(),
		Status:           domain.StatusConfirmed,
	}

	s.Booking = booking
	s.Staged = nil
	s.State = StateCompleted
	s.UpdatedAt = now

	return booking, nil
}

// ReopenSlotSelection возвращает завершенную сессию к выбору слота.
// Используется, когда сохранить подтвержденное бронирование не удалось
// (слот заняли между рендером и кликом): корзина сохраняется,
// результат и слот сбрасываются.
func (s *Session) ReopenSlotSelection(now time.Time) error {
	if s.State != StateCompleted {
		return fmt.Errorf("%w: reopen from state=%s", ErrInvalidTransition, s.State)
	}

	s.Booking = nil
	s.Staged = nil
	s.State = StateSelectingSlot
	s.UpdatedAt = now
	return nil
}

// Reset начинает новый цикл бронирования: корзина, слот и результат
// сбрасываются, сессия возвращается в начальное состояние.
// Единственный разрешенный цикл автомата.
func (s *Session) Reset(now time.Time) error {
	if s.State != StateCompleted {
		return fmt.Errorf("%w: reset from state=%s", ErrInvalidTransition, s.State)
	}

	s.Selection = domain.NewSelection()
	s.Staged = nil
	s.Booking = nil
	s.State = StateSelectingServices
	s.UpdatedAt = now
	return nil
}
