package get_availability

import "errors"

var (
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input")
	// ErrSessionNotFound сессия не найдена
	ErrSessionNotFound = errors.New("session not found")
	// ErrAccessDenied сессия принадлежит другому клиенту
	ErrAccessDenied = errors.New("access denied")
	// ErrEmptySelection корзина услуг пуста, длительность слота неизвестна
	ErrEmptySelection = errors.New("empty selection")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
