package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/glowdesk/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed           BookingStatus = "confirmed"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelledByCustomer BookingStatus = "cancelled_by_customer"
	StatusCancelledBySalon    BookingStatus = "cancelled_by_salon"
	StatusNoShow              BookingStatus = "no_show"
)

// BookedService is the denormalized snapshot of one selected service,
// frozen into the booking at confirmation time.
type BookedService struct {
	ServiceID       int64
	Name            string
	DurationMinutes int
	Price           float64
}

// Booking represents a finalized appointment in the system
type Booking struct {
	ID     int64
	Number uuid.UUID

	CustomerName     string
	ProfessionalID   int64
	ProfessionalName string

	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int

	Services   []BookedService
	TotalPrice float64

	Status BookingStatus
	Notes  *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByCustomer &&
		b.Status != StatusCancelledBySalon &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// EndTime returns the exclusive end of the booking interval.
func (b *Booking) EndTime() (types.TimeString, error) {
	return b.StartTime.AddMinutes(b.DurationMinutes)
}

// DayBookingsFilter describes a snapshot query for one calendar range.
// ProfessionalID nil means all professionals.
type DayBookingsFilter struct {
	StartDate       time.Time
	EndDate         time.Time
	ProfessionalID  *int64
	IncludeInactive bool
}
