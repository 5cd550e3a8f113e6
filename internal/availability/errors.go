package availability

import "errors"

var (
	// ErrInvalidDuration возвращается при неположительной длительности слота.
	// Нулевая длительность — ошибка вызывающего кода: слой выбора услуг
	// обязан отсечь пустую корзину до обращения к движку.
	ErrInvalidDuration = errors.New("availability: duration must be positive")

	// ErrInvalidStep возвращается при неположительном шаге сетки
	ErrInvalidStep = errors.New("availability: grid step must be positive")

	// ErrInvalidWorkingHours возвращается, когда закрытие не позже открытия
	ErrInvalidWorkingHours = errors.New("availability: close time must be after open time")
)
