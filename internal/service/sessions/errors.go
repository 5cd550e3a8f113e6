package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session not found")

	// ErrAccessDenied возвращается, когда сессия принадлежит другому клиенту
	ErrAccessDenied = errors.New("access denied")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("service not found")

	// ErrProfessionalNotFound возвращается, когда мастер не найден в справочнике
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrUnknownAction возвращается при неизвестном действии перехода
	ErrUnknownAction = errors.New("unknown transition action")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("sessions service: internal error")
)
