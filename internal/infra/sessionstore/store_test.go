package sessionstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowdesk/booking-service/internal/domain"
	"github.com/glowdesk/booking-service/internal/workflow"
	"github.com/glowdesk/booking-service/pkg/types"
)

var now = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func newConfirmingSession(t *testing.T) *workflow.Session {
	t.Helper()

	sess := workflow.NewSession("Мария", now)
	svc := domain.Service{ID: 1, Name: "Стрижка", DurationMinutes: 45, Price: 2500, Active: true}
	require.NoError(t, sess.ToggleService(svc, now))
	require.NoError(t, sess.ProceedToSlotSelection(now))
	require.NoError(t, sess.StageSlot(workflow.StagedSlot{
		Date:             time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		StartTime:        types.TimeString("10:00"),
		ProfessionalID:   7,
		ProfessionalName: "Анна",
	}, now))
	return sess
}

func TestStore_CreateAndGet(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	sess := workflow.NewSession("Мария", now)

	require.NoError(t, store.Create(ctx, sess))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, workflow.StateSelectingServices, got.State)
}

func TestStore_CreateDuplicate(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	sess := workflow.NewSession("Мария", now)

	require.NoError(t, store.Create(ctx, sess))
	assert.ErrorIs(t, store.Create(ctx, sess), ErrSessionExists)
}

func TestStore_GetNotFound(t *testing.T) {
	store := NewMemory()

	_, err := store.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_GetReturnsSnapshot(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	sess := workflow.NewSession("Мария", now)
	require.NoError(t, store.Create(ctx, sess))

	snapshot, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)

	// Мутация снапшота не должна протекать в хранилище
	snapshot.State = workflow.StateCompleted

	fresh, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, workflow.StateSelectingServices, fresh.State)
}

func TestStore_UpdateAppliesTransition(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	sess := newConfirmingSession(t)
	require.NoError(t, store.Create(ctx, sess))

	updated, err := store.Update(ctx, sess.ID, func(s *workflow.Session) error {
		_, confirmErr := s.Confirm(now)
		return confirmErr
	})
	require.NoError(t, err)
	assert.Equal(t, workflow.StateCompleted, updated.State)
}

func TestStore_UpdateErrorPropagates(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	sess := workflow.NewSession("Мария", now)
	require.NoError(t, store.Create(ctx, sess))

	_, err := store.Update(ctx, sess.ID, func(s *workflow.Session) error {
		return s.Reset(now)
	})
	assert.ErrorIs(t, err, workflow.ErrInvalidTransition)
}

// Параллельные подтверждения одной сессии: ровно одно должно пройти
func TestStore_ConcurrentConfirmAcceptedOnce(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	sess := newConfirmingSession(t)
	require.NoError(t, store.Create(ctx, sess))

	const attempts = 16
	var wg sync.WaitGroup
	var mu sync.Mutex
	confirmed := 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Update(ctx, sess.ID, func(s *workflow.Session) error {
				_, confirmErr := s.Confirm(now)
				return confirmErr
			})
			if err == nil {
				mu.Lock()
				confirmed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, confirmed)
}

func TestStore_Delete(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	sess := workflow.NewSession("Мария", now)
	require.NoError(t, store.Create(ctx, sess))

	store.Delete(ctx, sess.ID)
	_, err := store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Повторное удаление не ошибка
	store.Delete(ctx, sess.ID)
}

func TestStore_SweepRemovesIdleSessions(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	stale := workflow.NewSession("Мария", now.Add(-3*time.Hour))
	fresh := workflow.NewSession("Ольга", now)
	require.NoError(t, store.Create(ctx, stale))
	require.NoError(t, store.Create(ctx, fresh))

	store.sweep(now, 2*time.Hour)

	assert.Equal(t, 1, store.Len())
	_, err := store.Get(ctx, stale.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = store.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}
