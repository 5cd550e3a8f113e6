package cancel_booking

import (
	"context"

	"github.com/glowdesk/booking-service/internal/service/bookings/models"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	CancelBooking(ctx context.Context, req *models.CancelBookingRequest) (*models.BookingResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
