package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxCustomerNameLength       = 200
	MaxServicesPerBooking       = 10
)

// InactiveStatuses перечисляет статусы, не занимающие слот.
// Используется при фильтрации бронирований для проверки доступности.
var InactiveStatuses = []BookingStatus{
	StatusCancelledByCustomer,
	StatusCancelledBySalon,
	StatusNoShow,
}

// ActiveStatuses перечисляет статусы, занимающие слот
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCompleted,
}

// IsValidStatus reports whether s is one of the known booking statuses.
func IsValidStatus(s BookingStatus) bool {
	switch s {
	case StatusConfirmed, StatusCompleted, StatusCancelledByCustomer, StatusCancelledBySalon, StatusNoShow:
		return true
	default:
		return false
	}
}
