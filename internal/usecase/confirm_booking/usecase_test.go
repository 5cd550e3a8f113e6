package confirm_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowdesk/booking-service/internal/domain"
	"github.com/glowdesk/booking-service/internal/infra/sessionstore"
	"github.com/glowdesk/booking-service/internal/workflow"
	"github.com/glowdesk/booking-service/pkg/types"
)

var testNow = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

type fakeRepo struct {
	created       []*domain.Booking
	getForRangeFn func(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
}

func (f *fakeRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = int64(len(f.created) + 1)
	f.created = append(f.created, booking)
	return booking, nil
}

func (f *fakeRepo) GetForRange(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error) {
	if f.getForRangeFn == nil {
		return nil, nil
	}
	return f.getForRangeFn(ctx, filter)
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct{ now time.Time }

func (f *fakeTimeProvider) Now() time.Time { return f.now }

type fakeMetrics struct {
	confirmed int
	conflicts int
}

func (f *fakeMetrics) IncBookingConfirmed() { f.confirmed++ }
func (f *fakeMetrics) IncBookingConflict()  { f.conflicts++ }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var (
	haircut  = domain.Service{ID: 1, Name: "Стрижка", DurationMinutes: 45, Price: 2500, Active: true}
	manicure = domain.Service{ID: 2, Name: "Маникюр", DurationMinutes: 60, Price: 3000, Active: true}
)

// seedConfirmingSession кладет в хранилище сессию на шаге подтверждения
// со слотом 2024-01-20 10:00 у мастера 7
func seedConfirmingSession(t *testing.T, store *sessionstore.Store, services ...domain.Service) *workflow.Session {
	t.Helper()

	sess := workflow.NewSession("Мария", testNow)
	for _, svc := range services {
		require.NoError(t, sess.ToggleService(svc, testNow))
	}
	require.NoError(t, sess.ProceedToSlotSelection(testNow))
	require.NoError(t, sess.StageSlot(workflow.StagedSlot{
		Date:             time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		StartTime:        types.TimeString("10:00"),
		ProfessionalID:   7,
		ProfessionalName: "Анна",
	}, testNow))
	require.NoError(t, store.Create(context.Background(), sess))
	return sess
}

func newUseCase(store *sessionstore.Store, repo *fakeRepo, m Metrics) *UseCase {
	return New(
		store,
		repo,
		&fakeTxManager{},
		Schedule{OpenTime: "09:00", CloseTime: "19:00"},
		&fakeTimeProvider{now: testNow},
		m,
		nopLogger{},
	)
}

func TestExecute_ConfirmsMultiServiceBooking(t *testing.T) {
	store := sessionstore.NewMemory()
	repo := &fakeRepo{}
	metrics := &fakeMetrics{}
	sess := seedConfirmingSession(t, store, haircut, manicure)

	resp, err := newUseCase(store, repo, metrics).Execute(context.Background(), Request{
		SessionID:    sess.ID,
		CustomerName: "Мария",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Booking)

	// Агрегаты бронирования собраны из всей корзины
	assert.Equal(t, "2024-01-20", resp.Booking.Date)
	assert.Equal(t, "10:00", resp.Booking.StartTime)
	assert.Equal(t, 105, resp.Booking.DurationMinutes)
	assert.Equal(t, 5500.0, resp.Booking.TotalPrice)
	assert.Len(t, resp.Booking.Services, 2)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Booking.Status)

	require.Len(t, repo.created, 1)
	assert.Equal(t, 1, metrics.confirmed)

	// Сессия завершена и хранит результат
	stored, err := store.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, workflow.StateCompleted, stored.State)
	require.NotNil(t, stored.Booking)
}

func TestExecute_SingleServiceOnEmptyCalendar(t *testing.T) {
	store := sessionstore.NewMemory()
	repo := &fakeRepo{}
	premium := domain.Service{ID: 5, Name: "Спа-комплекс", DurationMinutes: 45, Price: 35000, Active: true}
	sess := seedConfirmingSession(t, store, premium)

	resp, err := newUseCase(store, repo, &fakeMetrics{}).Execute(context.Background(), Request{
		SessionID:    sess.ID,
		CustomerName: "Мария",
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-20", resp.Booking.Date)
	assert.Equal(t, "10:00", resp.Booking.StartTime)
	assert.Equal(t, "10:45", resp.Booking.EndTime)
	assert.Equal(t, 45, resp.Booking.DurationMinutes)
	assert.Equal(t, 35000.0, resp.Booking.TotalPrice)
}

func TestExecute_SecondSubmitCreatesNothing(t *testing.T) {
	store := sessionstore.NewMemory()
	repo := &fakeRepo{}
	metrics := &fakeMetrics{}
	sess := seedConfirmingSession(t, store, haircut)
	uc := newUseCase(store, repo, metrics)
	req := Request{SessionID: sess.ID, CustomerName: "Мария"}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoPendingConfirmation)

	assert.Len(t, repo.created, 1)
	assert.Equal(t, 1, metrics.confirmed)
}

func TestExecute_SlotConflictReopensSlotSelection(t *testing.T) {
	store := sessionstore.NewMemory()
	// Кто-то успел занять 10:00-10:45 у того же мастера
	repo := &fakeRepo{
		getForRangeFn: func(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error) {
			return []*domain.Booking{{
				ProfessionalID:  7,
				BookingDate:     time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
				StartTime:       types.TimeString("10:00"),
				DurationMinutes: 45,
				Status:          domain.StatusConfirmed,
			}}, nil
		},
	}
	metrics := &fakeMetrics{}
	sess := seedConfirmingSession(t, store, haircut)

	_, err := newUseCase(store, repo, metrics).Execute(context.Background(), Request{
		SessionID:    sess.ID,
		CustomerName: "Мария",
	})
	assert.ErrorIs(t, err, ErrSlotNoLongerAvailable)
	assert.Empty(t, repo.created)
	assert.Equal(t, 1, metrics.conflicts)

	// Корзина сохранена, сессия вернулась к выбору слота
	stored, getErr := store.Get(context.Background(), sess.ID)
	require.NoError(t, getErr)
	assert.Equal(t, workflow.StateSelectingSlot, stored.State)
	assert.True(t, stored.Selection.Contains(haircut.ID))
	assert.Nil(t, stored.Booking)
}

func TestExecute_PastDateRejectedAndReopened(t *testing.T) {
	store := sessionstore.NewMemory()
	repo := &fakeRepo{}
	sess := seedConfirmingSession(t, store, haircut)

	uc := New(
		store,
		repo,
		&fakeTxManager{},
		Schedule{OpenTime: "09:00", CloseTime: "19:00"},
		// Сегодня уже позже выбранной даты
		&fakeTimeProvider{now: time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)},
		&fakeMetrics{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), Request{SessionID: sess.ID, CustomerName: "Мария"})
	assert.ErrorIs(t, err, ErrPastDate)
	assert.Empty(t, repo.created)

	stored, getErr := store.Get(context.Background(), sess.ID)
	require.NoError(t, getErr)
	assert.Equal(t, workflow.StateSelectingSlot, stored.State)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	store := sessionstore.NewMemory()
	repo := &fakeRepo{}
	sess := seedConfirmingSession(t, store, haircut)

	uc := New(
		store,
		repo,
		&fakeTxManager{},
		// Салон закрывается раньше конца слота 10:00-10:45
		Schedule{OpenTime: "09:00", CloseTime: "10:30"},
		&fakeTimeProvider{now: testNow},
		&fakeMetrics{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), Request{SessionID: sess.ID, CustomerName: "Мария"})
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
	assert.Empty(t, repo.created)
}

func TestExecute_AccessDenied(t *testing.T) {
	store := sessionstore.NewMemory()
	repo := &fakeRepo{}
	sess := seedConfirmingSession(t, store, haircut)

	_, err := newUseCase(store, repo, &fakeMetrics{}).Execute(context.Background(), Request{
		SessionID:    sess.ID,
		CustomerName: "Ольга",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Чужой запрос не тронул сессию
	stored, getErr := store.Get(context.Background(), sess.ID)
	require.NoError(t, getErr)
	assert.Equal(t, workflow.StateConfirming, stored.State)
}

func TestExecute_SessionNotFound(t *testing.T) {
	store := sessionstore.NewMemory()

	_, err := newUseCase(store, &fakeRepo{}, &fakeMetrics{}).Execute(context.Background(), Request{
		SessionID:    uuid.New(),
		CustomerName: "Мария",
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	store := sessionstore.NewMemory()

	_, err := newUseCase(store, &fakeRepo{}, &fakeMetrics{}).Execute(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
