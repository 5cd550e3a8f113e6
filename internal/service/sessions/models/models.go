package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/glowdesk/booking-service/internal/domain"
	bookingmodels "github.com/glowdesk/booking-service/internal/service/bookings/models"
	"github.com/glowdesk/booking-service/internal/workflow"
	"github.com/glowdesk/booking-service/pkg/types"
)

// Действия переходов, принимаемые ApplyTransition
const (
	ActionProceed        = "proceed"
	ActionModifyServices = "modify_services"
	ActionCancelSlot     = "cancel_slot"
	ActionReset          = "reset"
)

// StartSessionRequest запрос создания сессии бронирования
type StartSessionRequest struct {
	CustomerName         string
	PreselectedServiceID *int64
}

// ToggleServiceRequest запрос добавления/удаления услуги из корзины
type ToggleServiceRequest struct {
	SessionID    uuid.UUID
	CustomerName string
	ServiceID    int64
}

// TransitionRequest запрос перехода состояния сессии
type TransitionRequest struct {
	SessionID    uuid.UUID
	CustomerName string
	Action       string
}

// StageSlotRequest запрос выбора слота
type StageSlotRequest struct {
	SessionID      uuid.UUID
	CustomerName   string
	Date           time.Time
	StartTime      types.TimeString
	ProfessionalID int64
}

// SelectedServiceResponse услуга в корзине сессии
type SelectedServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
}

// StagedSlotResponse слот, ожидающий подтверждения
type StagedSlotResponse struct {
	Date             string `json:"date"`
	StartTime        string `json:"startTime"`
	ProfessionalID   int64  `json:"professionalId"`
	ProfessionalName string `json:"professionalName"`
}

// SessionResponse снапшот сессии для вызывающих слоев.
// Totals всегда пересчитываются из текущей корзины.
type SessionResponse struct {
	ID                   string                         `json:"id"`
	CustomerName         string                         `json:"customerName"`
	State                string                         `json:"state"`
	Services             []SelectedServiceResponse      `json:"services"`
	TotalDurationMinutes int                            `json:"totalDurationMinutes"`
	TotalPrice           float64                        `json:"totalPrice"`
	StagedSlot           *StagedSlotResponse            `json:"stagedSlot,omitempty"`
	Booking              *bookingmodels.BookingResponse `json:"booking,omitempty"`
	CreatedAt            time.Time                      `json:"createdAt"`
	UpdatedAt            time.Time                      `json:"updatedAt"`
}

// FromSession конвертирует сессию workflow в response модель
func FromSession(sess *workflow.Session) *SessionResponse {
	services := sess.Selection.Services()
	selected := make([]SelectedServiceResponse, len(services))
	for i, svc := range services {
		selected[i] = SelectedServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
			Category:        svc.Category,
		}
	}

	resp := &SessionResponse{
		ID:                   sess.ID.String(),
		CustomerName:         sess.CustomerName,
		State:                string(sess.State),
		Services:             selected,
		TotalDurationMinutes: sess.Selection.TotalDurationMinutes(),
		TotalPrice:           sess.Selection.TotalPrice(),
		CreatedAt:            sess.CreatedAt,
		UpdatedAt:            sess.UpdatedAt,
	}

	if sess.Staged != nil {
		resp.StagedSlot = &StagedSlotResponse{
			Date:             sess.Staged.Date.Format(domain.DateFormat),
			StartTime:        sess.Staged.StartTime.String(),
			ProfessionalID:   sess.Staged.ProfessionalID,
			ProfessionalName: sess.Staged.ProfessionalName,
		}
	}

	if sess.Booking != nil {
		resp.Booking = bookingmodels.FromDomainBooking(sess.Booking)
	}

	return resp
}
