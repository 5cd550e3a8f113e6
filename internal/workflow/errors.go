package workflow

import "errors"

var (
	// ErrInvalidTransition возвращается при попытке перехода,
	// недопустимого из текущего состояния сессии
	ErrInvalidTransition = errors.New("workflow: invalid transition")

	// ErrEmptySelection возвращается при попытке перейти к выбору слота
	// без единой выбранной услуги
	ErrEmptySelection = errors.New("workflow: selection is empty")

	// ErrSelectionLocked возвращается при попытке изменить корзину
	// вне состояния выбора услуг
	ErrSelectionLocked = errors.New("workflow: selection can only change while selecting services")

	// ErrNoPendingConfirmation возвращается, когда подтверждать нечего.
	// В частности, повторный confirm после уже принятого получает эту ошибку —
	// первая принятая команда сразу выводит сессию из состояния Confirming.
	ErrNoPendingConfirmation = errors.New("workflow: no pending confirmation")

	// ErrNoStagedSlot возвращается при подтверждении без выбранного слота
	ErrNoStagedSlot = errors.New("workflow: no staged slot")

	// ErrInactiveService возвращается при попытке добавить неактивную услугу
	ErrInactiveService = errors.New("workflow: service is not active")
)
