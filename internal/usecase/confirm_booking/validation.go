package confirm_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/glowdesk/booking-service/internal/availability"
	"github.com/glowdesk/booking-service/internal/domain"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req Request) error {
	if req.SessionID == uuid.Nil {
		return fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	return nil
}

// validateSlot проверяет дату и рабочее окно слота перед записью в БД
func (uc *UseCase) validateSlot(draft *domain.Booking, now time.Time) error {
	if availability.IsPastDate(draft.BookingDate, now) {
		return fmt.Errorf("%w: %s", ErrPastDate, draft.BookingDate.Format(domain.DateFormat))
	}

	if draft.StartTime.IsBefore(uc.schedule.OpenTime) {
		return fmt.Errorf("%w: starts at %s before opening %s", ErrOutsideWorkingHours, draft.StartTime, uc.schedule.OpenTime)
	}

	end, err := draft.StartTime.AddMinutes(draft.DurationMinutes)
	if err != nil {
		return fmt.Errorf("%w: %s + %d min: %v", ErrOutsideWorkingHours, draft.StartTime, draft.DurationMinutes, err)
	}
	if end.IsAfter(uc.schedule.CloseTime) {
		return fmt.Errorf("%w: ends at %s after closing %s", ErrOutsideWorkingHours, end, uc.schedule.CloseTime)
	}

	return nil
}
