package cancel_booking

import "github.com/glowdesk/booking-service/internal/service/bookings/models"

// CancelBookingRequest тело запроса отмены бронирования
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(bookingID int64, customerName string) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		BookingID:    bookingID,
		CustomerName: customerName,
		Reason:       r.Reason,
	}
}
