package models

import (
	"fmt"
	"time"

	"github.com/glowdesk/booking-service/internal/domain"
)

// GetCustomerBookingsRequest запрос истории бронирований клиента
type GetCustomerBookingsRequest struct {
	CustomerName string
	Status       *string
}

// CancelBookingRequest запрос отмены бронирования
type CancelBookingRequest struct {
	BookingID    int64
	CustomerName string
	Reason       string
}

// BookedServiceResponse снапшот услуги в составе бронирования
type BookedServiceResponse struct {
	ServiceID       int64   `json:"serviceId"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// BookingResponse модель бронирования для вызывающих слоев
type BookingResponse struct {
	ID               int64                   `json:"id"`
	Number           string                  `json:"number"`
	CustomerName     string                  `json:"customerName"`
	ProfessionalID   int64                   `json:"professionalId"`
	ProfessionalName string                  `json:"professionalName"`
	Date             string                  `json:"date"`
	StartTime        string                  `json:"startTime"`
	EndTime          string                  `json:"endTime,omitempty"`
	DurationMinutes  int                     `json:"durationMinutes"`
	Services         []BookedServiceResponse `json:"services"`
	TotalPrice       float64                 `json:"totalPrice"`
	Status           string                  `json:"status"`
	Notes            *string                 `json:"notes,omitempty"`
	CancelReason     *string                 `json:"cancellationReason,omitempty"`
	CancelledAt      *time.Time              `json:"cancelledAt,omitempty"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует доменное бронирование в response модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	services := make([]BookedServiceResponse, len(b.Services))
	for i, svc := range b.Services {
		services[i] = BookedServiceResponse{
			ServiceID:       svc.ServiceID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		}
	}

	// Конец интервала считаем из начала и длительности; некорректное
	// время просто оставляет поле пустым
	endTime := ""
	if end, err := b.EndTime(); err == nil {
		endTime = end.String()
	}

	return &BookingResponse{
		ID:               b.ID,
		Number:           b.Number.String(),
		CustomerName:     b.CustomerName,
		ProfessionalID:   b.ProfessionalID,
		ProfessionalName: b.ProfessionalName,
		Date:             b.BookingDate.Format(domain.DateFormat),
		StartTime:        b.StartTime.String(),
		EndTime:          endTime,
		DurationMinutes:  b.DurationMinutes,
		Services:         services,
		TotalPrice:       b.TotalPrice,
		Status:           string(b.Status),
		Notes:            b.Notes,
		CancelReason:     b.CancellationReason,
		CancelledAt:      b.CancelledAt,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = *FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: out,
		Total:    len(out),
	}
}

// ToDomainBookingStatus валидирует и конвертирует статус из строки
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !domain.IsValidStatus(status) {
		return "", fmt.Errorf("unknown booking status %q", s)
	}
	return status, nil
}
