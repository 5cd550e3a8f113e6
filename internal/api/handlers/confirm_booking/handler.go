package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/glowdesk/booking-service/internal/api/handlers"
	"github.com/glowdesk/booking-service/internal/api/middleware"
	confirmBooking "github.com/glowdesk/booking-service/internal/usecase/confirm_booking"
)

const (
	msgInvalidSessionID    = "некорректный ID сессии"
	msgSessionNotFound     = "сессия не найдена"
	msgMissingCustomerName = "отсутствует имя клиента"
	msgForbidden           = "доступ запрещен"
	msgNoPendingConfirm    = "сессия не находится на шаге подтверждения"
	msgPastDate            = "выбранная дата уже прошла, выберите другой слот"
	msgOutsideWorkingHours = "слот выходит за рабочие часы салона"
	msgSlotNoLongerFree    = "слот уже занят, выберите другое время"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/confirm - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	customerName, ok := middleware.GetCustomerName(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions/{id}/confirm - Missing customer name")
		handlers.RespondUnauthorized(w, msgMissingCustomerName)
		return
	}

	result, err := h.useCase.Execute(r.Context(), confirmBooking.Request{
		SessionID:    sessionID,
		CustomerName: customerName,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/confirm - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, confirmBooking.ErrAccessDenied):
			h.logger.Warn("POST /sessions/{id}/confirm - Access denied: session=%s, customer=%s", sessionID, customerName)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, confirmBooking.ErrNoPendingConfirmation):
			// Сюда же попадает повторный сабмит: первый запрос уже забрал сессию
			h.logger.Warn("POST /sessions/{id}/confirm - No pending confirmation: session=%s", sessionID)
			handlers.RespondConflict(w, msgNoPendingConfirm)

		case errors.Is(err, confirmBooking.ErrPastDate):
			h.logger.Warn("POST /sessions/{id}/confirm - Past date: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, confirmBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /sessions/{id}/confirm - Outside working hours: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, confirmBooking.ErrSlotNoLongerAvailable):
			h.logger.Warn("POST /sessions/{id}/confirm - Slot conflict: session=%s", sessionID)
			handlers.RespondConflict(w, msgSlotNoLongerFree)

		default:
			h.logger.Error("POST /sessions/{id}/confirm - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/confirm - Booking confirmed: session=%s, booking=%s",
		sessionID, result.Booking.Number)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
