package catalogservice

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("catalog service not found")

	// ErrProfessionalNotFound возвращается, когда мастер не найден в справочнике
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")

	// ErrServiceDegraded возвращается, когда CatalogService недоступен
	// и вызывающий код может продолжить с пустым каталогом
	ErrServiceDegraded = errors.New("catalogservice unavailable: graceful degradation applied")
)
