package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowdesk/booking-service/internal/infra/sessionstore"
	"github.com/glowdesk/booking-service/internal/integrations/catalogservice"
	"github.com/glowdesk/booking-service/internal/service/sessions/models"
	"github.com/glowdesk/booking-service/internal/workflow"
	"github.com/glowdesk/booking-service/pkg/types"
)

type fakeCatalog struct {
	services      map[int64]catalogservice.Service
	professionals map[int64]catalogservice.Professional
}

func (f *fakeCatalog) GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error) {
	svc, ok := f.services[serviceID]
	if !ok {
		return nil, catalogservice.ErrServiceNotFound
	}
	return &svc, nil
}

func (f *fakeCatalog) GetProfessional(ctx context.Context, professionalID int64) (*catalogservice.Professional, error) {
	p, ok := f.professionals[professionalID]
	if !ok {
		return nil, catalogservice.ErrProfessionalNotFound
	}
	return &p, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService() (*Service, *sessionstore.Store) {
	store := sessionstore.NewMemory()
	catalog := &fakeCatalog{
		services: map[int64]catalogservice.Service{
			1: {ID: 1, Name: "Стрижка", DurationMinutes: 45, Price: 2500, IsActive: true},
			2: {ID: 2, Name: "Маникюр", DurationMinutes: 60, Price: 3000, IsActive: true},
			3: {ID: 3, Name: "Архивная услуга", DurationMinutes: 30, Price: 1000, IsActive: false},
		},
		professionals: map[int64]catalogservice.Professional{
			7: {ID: 7, DisplayName: "Анна"},
		},
	}
	return NewService(store, catalog, nopLogger{}), store
}

func TestStartSession_EmptyCart(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.StartSession(context.Background(), &models.StartSessionRequest{CustomerName: "Мария"})
	require.NoError(t, err)

	assert.Equal(t, string(workflow.StateSelectingServices), resp.State)
	assert.Empty(t, resp.Services)
}

func TestStartSession_WithPreselectedService(t *testing.T) {
	svc, _ := newTestService()
	serviceID := int64(1)

	resp, err := svc.StartSession(context.Background(), &models.StartSessionRequest{
		CustomerName:         "Мария",
		PreselectedServiceID: &serviceID,
	})
	require.NoError(t, err)

	// Предвыбор услуги пропускает шаг выбора услуг
	assert.Equal(t, string(workflow.StateSelectingSlot), resp.State)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, serviceID, resp.Services[0].ID)
}

func TestStartSession_PreselectedInactiveRejected(t *testing.T) {
	svc, _ := newTestService()
	serviceID := int64(3)

	_, err := svc.StartSession(context.Background(), &models.StartSessionRequest{
		CustomerName:         "Мария",
		PreselectedServiceID: &serviceID,
	})
	assert.ErrorIs(t, err, workflow.ErrInactiveService)
}

func TestToggleService_ValidatesAgainstCatalog(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	start, err := svc.StartSession(ctx, &models.StartSessionRequest{CustomerName: "Мария"})
	require.NoError(t, err)
	sessionID := uuid.MustParse(start.ID)

	resp, err := svc.ToggleService(ctx, &models.ToggleServiceRequest{
		SessionID:    sessionID,
		CustomerName: "Мария",
		ServiceID:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, 45, resp.TotalDurationMinutes)
	assert.Equal(t, 2500.0, resp.TotalPrice)

	_, err = svc.ToggleService(ctx, &models.ToggleServiceRequest{
		SessionID:    sessionID,
		CustomerName: "Мария",
		ServiceID:    99,
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestApplyTransition_FullPathToConfirming(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	start, err := svc.StartSession(ctx, &models.StartSessionRequest{CustomerName: "Мария"})
	require.NoError(t, err)
	sessionID := uuid.MustParse(start.ID)

	_, err = svc.ToggleService(ctx, &models.ToggleServiceRequest{
		SessionID: sessionID, CustomerName: "Мария", ServiceID: 1,
	})
	require.NoError(t, err)

	resp, err := svc.ApplyTransition(ctx, &models.TransitionRequest{
		SessionID: sessionID, CustomerName: "Мария", Action: models.ActionProceed,
	})
	require.NoError(t, err)
	assert.Equal(t, string(workflow.StateSelectingSlot), resp.State)

	resp, err = svc.StageSlot(ctx, &models.StageSlotRequest{
		SessionID:      sessionID,
		CustomerName:   "Мария",
		Date:           time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		StartTime:      types.TimeString("10:00"),
		ProfessionalID: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, string(workflow.StateConfirming), resp.State)
	require.NotNil(t, resp.StagedSlot)
	assert.Equal(t, "Анна", resp.StagedSlot.ProfessionalName)
}

func TestApplyTransition_ProceedWithEmptyCart(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	start, err := svc.StartSession(ctx, &models.StartSessionRequest{CustomerName: "Мария"})
	require.NoError(t, err)

	_, err = svc.ApplyTransition(ctx, &models.TransitionRequest{
		SessionID:    uuid.MustParse(start.ID),
		CustomerName: "Мария",
		Action:       models.ActionProceed,
	})
	assert.ErrorIs(t, err, workflow.ErrEmptySelection)
}

func TestApplyTransition_UnknownAction(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	start, err := svc.StartSession(ctx, &models.StartSessionRequest{CustomerName: "Мария"})
	require.NoError(t, err)

	_, err = svc.ApplyTransition(ctx, &models.TransitionRequest{
		SessionID:    uuid.MustParse(start.ID),
		CustomerName: "Мария",
		Action:       "teleport",
	})
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestStageSlot_UnknownProfessional(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	start, err := svc.StartSession(ctx, &models.StartSessionRequest{CustomerName: "Мария"})
	require.NoError(t, err)

	_, err = svc.StageSlot(ctx, &models.StageSlotRequest{
		SessionID:      uuid.MustParse(start.ID),
		CustomerName:   "Мария",
		Date:           time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		StartTime:      types.TimeString("10:00"),
		ProfessionalID: 99,
	})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestGetSession_OwnershipEnforced(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	start, err := svc.StartSession(ctx, &models.StartSessionRequest{CustomerName: "Мария"})
	require.NoError(t, err)
	sessionID := uuid.MustParse(start.ID)

	_, err = svc.GetSession(ctx, sessionID, "Ольга")
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.GetSession(ctx, sessionID, "Мария")
	require.NoError(t, err)
	assert.Equal(t, start.ID, resp.ID)
}

func TestGetSession_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetSession(context.Background(), uuid.New(), "Мария")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
