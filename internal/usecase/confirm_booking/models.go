package confirm_booking

import (
	"github.com/google/uuid"

	bookingmodels "github.com/glowdesk/booking-service/internal/service/bookings/models"
	"github.com/glowdesk/booking-service/pkg/types"
)

// Schedule рабочий график салона, ограничивает допустимое окно слотов
type Schedule struct {
	OpenTime  types.TimeString
	CloseTime types.TimeString
}

// Request входные данные подтверждения бронирования
type Request struct {
	SessionID    uuid.UUID
	CustomerName string
}

// Response созданное бронирование
type Response struct {
	Booking *bookingmodels.BookingResponse `json:"booking"`
}
