package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowdesk/booking-service/internal/domain"
	"github.com/glowdesk/booking-service/pkg/types"
)

var testDate = time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

func makeBooking(professionalID int64, start string, durationMinutes int, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ProfessionalID:  professionalID,
		BookingDate:     testDate,
		StartTime:       types.TimeString(start),
		DurationMinutes: durationMinutes,
		Status:          status,
	}
}

func TestIsSlotAvailable_EmptyCalendar(t *testing.T) {
	ok, err := IsSlotAvailable(nil, testDate, "10:00", 1, 45)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsSlotAvailable_TouchingEndpointsAllowed(t *testing.T) {
	// Бронирование 10:00-10:45
	bookings := []*domain.Booking{makeBooking(1, "10:00", 45, domain.StatusConfirmed)}

	// Слот 09:15-10:00 заканчивается ровно в начале бронирования
	ok, err := IsSlotAvailable(bookings, testDate, "09:15", 1, 45)
	require.NoError(t, err)
	assert.True(t, ok)

	// Слот 10:45-11:30 начинается ровно в конце бронирования
	ok, err = IsSlotAvailable(bookings, testDate, "10:45", 1, 45)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsSlotAvailable_OverlapDetected(t *testing.T) {
	// Бронирование 10:00-10:45 (600-645 минут)
	bookings := []*domain.Booking{makeBooking(1, "10:00", 45, domain.StatusConfirmed)}

	cases := []struct {
		name     string
		start    string
		duration int
		want     bool
	}{
		{"слот 09:15-10:00 граничит слева", "09:15", 45, true},
		{"слот 09:30-10:15 пересекает начало", "09:30", 45, false},
		{"слот 10:15-10:30 целиком внутри", "10:15", 15, false},
		{"слот 10:30-11:15 пересекает конец", "10:30", 45, false},
		{"слот 09:45-11:00 покрывает целиком", "09:45", 75, false},
		{"слот 10:45-11:30 граничит справа", "10:45", 45, true},
		{"слот 11:00-11:45 не пересекается", "11:00", 45, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := IsSlotAvailable(bookings, testDate, types.TimeString(tc.start), 1, tc.duration)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestIsSlotAvailable_IgnoresOtherProfessionals(t *testing.T) {
	bookings := []*domain.Booking{makeBooking(2, "10:00", 45, domain.StatusConfirmed)}

	ok, err := IsSlotAvailable(bookings, testDate, "10:00", 1, 45)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsSlotAvailable_IgnoresOtherDays(t *testing.T) {
	bookings := []*domain.Booking{makeBooking(1, "10:00", 45, domain.StatusConfirmed)}

	ok, err := IsSlotAvailable(bookings, testDate.AddDate(0, 0, 1), "10:00", 1, 45)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsSlotAvailable_InactiveBookingsFreeTheSlot(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusCancelledByCustomer,
		domain.StatusCancelledBySalon,
		domain.StatusNoShow,
	} {
		bookings := []*domain.Booking{makeBooking(1, "10:00", 45, status)}

		ok, err := IsSlotAvailable(bookings, testDate, "10:00", 1, 45)
		require.NoError(t, err)
		assert.True(t, ok, "status %s не должен занимать слот", status)
	}
}

func TestIsSlotAvailable_InvalidDuration(t *testing.T) {
	for _, duration := range []int{0, -15} {
		_, err := IsSlotAvailable(nil, testDate, "10:00", 1, duration)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	}
}

func TestFindBookingAt_HalfOpenBoundaries(t *testing.T) {
	booking := makeBooking(1, "10:00", 45, domain.StatusConfirmed)
	bookings := []*domain.Booking{booking}

	// Начало интервала принадлежит бронированию
	assert.Equal(t, booking, FindBookingAt(bookings, testDate, "10:00", 1))
	// Внутренняя точка
	assert.Equal(t, booking, FindBookingAt(bookings, testDate, "10:30", 1))
	// Конец интервала принадлежит следующему слоту
	assert.Nil(t, FindBookingAt(bookings, testDate, "10:45", 1))
	// До начала
	assert.Nil(t, FindBookingAt(bookings, testDate, "09:45", 1))
}

func TestFindBookingAt_SkipsCancelled(t *testing.T) {
	bookings := []*domain.Booking{makeBooking(1, "10:00", 45, domain.StatusCancelledByCustomer)}

	assert.Nil(t, FindBookingAt(bookings, testDate, "10:15", 1))
}

func TestGenerateTimeRows(t *testing.T) {
	rows, err := GenerateTimeRows("09:00", "11:00", 30)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30"}, rows)
}

func TestGenerateTimeRows_LastRowMustFitBeforeClose(t *testing.T) {
	// 09:45 + 45 минут заканчивается ровно в закрытие и еще помещается
	rows, err := GenerateTimeRows("09:00", "10:30", 45)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00", "09:45"}, rows)
}

func TestGenerateTimeRows_InvalidInput(t *testing.T) {
	_, err := GenerateTimeRows("09:00", "19:00", 0)
	assert.ErrorIs(t, err, ErrInvalidStep)

	_, err = GenerateTimeRows("19:00", "09:00", 30)
	assert.ErrorIs(t, err, ErrInvalidWorkingHours)
}

func TestIsPastDate(t *testing.T) {
	now := time.Date(2024, 1, 20, 15, 30, 0, 0, time.UTC)

	// Сегодняшняя дата не считается прошедшей, даже если день уже начался
	assert.False(t, IsPastDate(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsPastDate(time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC), now))
	assert.True(t, IsPastDate(time.Date(2024, 1, 19, 0, 0, 0, 0, time.UTC), now))
}
