package confirm_booking

import "errors"

var (
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input")
	// ErrSessionNotFound сессия не найдена
	ErrSessionNotFound = errors.New("session not found")
	// ErrAccessDenied сессия принадлежит другому клиенту
	ErrAccessDenied = errors.New("access denied")
	// ErrNoPendingConfirmation сессия не находится на шаге подтверждения
	ErrNoPendingConfirmation = errors.New("no pending confirmation")
	// ErrPastDate выбранная дата уже прошла
	ErrPastDate = errors.New("booking date is in the past")
	// ErrOutsideWorkingHours слот выходит за рабочие часы салона
	ErrOutsideWorkingHours = errors.New("slot is outside working hours")
	// ErrSlotNoLongerAvailable слот заняли между выбором и подтверждением
	ErrSlotNoLongerAvailable = errors.New("slot is no longer available")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
