package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBuildQuery возвращается при ошибке сборки SQL запроса
	ErrBuildQuery = errors.New("booking repository: build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking repository: execute query")

	// ErrScanRow возвращается при ошибке чтения строки результата
	ErrScanRow = errors.New("booking repository: scan row")
)
