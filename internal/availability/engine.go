// Package availability решает, какие слоты календаря могут вместить
// бронирование заданной длительности.
//
// Движок — чистые функции над срезом существующих бронирований,
// который передает вызывающий код. Никакого глобального состояния
// и обращений к хранилищу здесь нет: это позволяет подменять источник
// бронирований (БД, снапшот, фикстуры в тестах) без изменений движка.
package availability

import (
	"fmt"
	"time"

	"github.com/glowdesk/booking-service/internal/domain"
	"github.com/glowdesk/booking-service/pkg/types"
)

// IsSlotAvailable проверяет, свободен ли интервал [start, start+duration)
// у мастера professionalID на дату date.
//
// Интервалы полуоткрытые: касание границ пересечением не считается.
// Примеры:
//   - слот 09:15-10:00, бронирование 10:00-10:45 → свободно (граничат)
//   - слот 09:30-10:15, бронирование 10:00-10:45 → занято (пересекаются)
//
// Неактивные бронирования (отмененные, no-show) слот не занимают.
// Прошедшие даты движок не рассматривает — этот фильтр накладывается
// выше, при построении сетки (IsPastDate).
func IsSlotAvailable(
	bookings []*domain.Booking,
	date time.Time,
	start types.TimeString,
	professionalID int64,
	durationMinutes int,
) (bool, error) {
	if durationMinutes <= 0 {
		return false, fmt.Errorf("%w: got %d", ErrInvalidDuration, durationMinutes)
	}

	slotStart := start.MinutesFromMidnight()
	slotEnd := slotStart + durationMinutes

	for _, booking := range bookings {
		if booking.ProfessionalID != professionalID {
			continue
		}
		if !SameDay(booking.BookingDate, date) {
			continue
		}
		if !booking.IsActive() {
			continue
		}

		bookingStart := booking.StartTime.MinutesFromMidnight()
		bookingEnd := bookingStart + booking.DurationMinutes

		// Строгие неравенства: границы могут совпадать
		if slotStart < bookingEnd && slotEnd > bookingStart {
			return false, nil
		}
	}

	return true, nil
}

// FindBookingAt возвращает бронирование, интервал которого содержит
// момент at (bookingStart <= at < bookingEnd) у мастера на дату date,
// либо nil. Момент ровно в конце бронирования принадлежит следующему
// слоту. Используется только для отображения занятых ячеек.
func FindBookingAt(
	bookings []*domain.Booking,
	date time.Time,
	at types.TimeString,
	professionalID int64,
) *domain.Booking {
	instant := at.MinutesFromMidnight()

	for _, booking := range bookings {
		if booking.ProfessionalID != professionalID {
			continue
		}
		if !SameDay(booking.BookingDate, date) {
			continue
		}
		if !booking.IsActive() {
			continue
		}

		bookingStart := booking.StartTime.MinutesFromMidnight()
		bookingEnd := bookingStart + booking.DurationMinutes

		if bookingStart <= instant && instant < bookingEnd {
			return booking
		}
	}

	return nil
}

// GenerateTimeRows строит строки временной сетки: от открытия салона
// с фиксированным шагом, пока слот шага целиком помещается до закрытия.
func GenerateTimeRows(open, close types.TimeString, stepMinutes int) ([]types.TimeString, error) {
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStep, stepMinutes)
	}
	if !open.IsBefore(close) {
		return nil, fmt.Errorf("%w: open=%s close=%s", ErrInvalidWorkingHours, open, close)
	}

	rows := make([]types.TimeString, 0)
	current := open

	for current.IsBefore(close) {
		rowEnd, err := current.AddMinutes(stepMinutes)
		if err != nil {
			return nil, err
		}
		if rowEnd.IsAfter(close) {
			break
		}

		rows = append(rows, current)

		current, err = current.AddMinutes(stepMinutes)
		if err != nil {
			return nil, err
		}
	}

	return rows, nil
}

// SameDay проверяет, что две даты относятся к одному календарному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsPastDate проверяет, что дата строго раньше сегодняшнего дня.
// Время суток игнорируется: сравниваются даты, обнуленные до полуночи.
func IsPastDate(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
