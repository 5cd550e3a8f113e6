package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowdesk/booking-service/internal/domain"
	bookingRepo "github.com/glowdesk/booking-service/internal/infra/storage/booking"
	"github.com/glowdesk/booking-service/internal/service/bookings/models"
	"github.com/glowdesk/booking-service/pkg/ptr"
	"github.com/glowdesk/booking-service/pkg/types"
)

type fakeRepo struct {
	bookings map[int64]*domain.Booking
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}

	copied := *b
	return &copied, nil
}

func (f *fakeRepo) GetByCustomer(ctx context.Context, customerName string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.CustomerName != customerName {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	if reason != "" {
		b.CancellationReason = &reason
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService(bookings ...*domain.Booking) *Service {
	repo := &fakeRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return NewService(repo, nopLogger{})
}

func confirmedBooking(id int64, customer string) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		CustomerName:    customer,
		ProfessionalID:  7,
		BookingDate:     time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 45,
		Status:          domain.StatusConfirmed,
	}
}

func TestGetByID_OwnershipEnforced(t *testing.T) {
	svc := newTestService(confirmedBooking(1, "Мария"))

	resp, err := svc.GetByID(context.Background(), 1, "Мария")
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	_, err = svc.GetByID(context.Background(), 1, "Ольга")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 99, "Мария")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetCustomerBookings_StatusFilter(t *testing.T) {
	cancelled := confirmedBooking(2, "Мария")
	cancelled.Status = domain.StatusCancelledByCustomer
	svc := newTestService(confirmedBooking(1, "Мария"), cancelled, confirmedBooking(3, "Ольга"))

	all, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		CustomerName: "Мария",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	confirmed, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		CustomerName: "Мария",
		Status:       ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)
	require.Equal(t, 1, confirmed.Total)
	assert.Equal(t, int64(1), confirmed.Bookings[0].ID)
}

func TestGetCustomerBookings_InvalidStatus(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		CustomerName: "Мария",
		Status:       ptr.Ptr("teleported"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancelBooking(t *testing.T) {
	svc := newTestService(confirmedBooking(1, "Мария"))

	resp, err := svc.CancelBooking(context.Background(), &models.CancelBookingRequest{
		BookingID:    1,
		CustomerName: "Мария",
		Reason:       "не успеваю",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelledByCustomer), resp.Status)
	require.NotNil(t, resp.CancelReason)
	assert.Equal(t, "не успеваю", *resp.CancelReason)
}

func TestCancelBooking_OnlyConfirmedCancellable(t *testing.T) {
	completed := confirmedBooking(1, "Мария")
	completed.Status = domain.StatusCompleted
	svc := newTestService(completed)

	_, err := svc.CancelBooking(context.Background(), &models.CancelBookingRequest{
		BookingID:    1,
		CustomerName: "Мария",
	})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancelBooking_AccessDenied(t *testing.T) {
	svc := newTestService(confirmedBooking(1, "Мария"))

	_, err := svc.CancelBooking(context.Background(), &models.CancelBookingRequest{
		BookingID:    1,
		CustomerName: "Ольга",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
