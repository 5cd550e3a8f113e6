package stage_slot

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/glowdesk/booking-service/internal/api/handlers"
	"github.com/glowdesk/booking-service/internal/api/middleware"
	"github.com/glowdesk/booking-service/internal/service/sessions"
	"github.com/glowdesk/booking-service/internal/workflow"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidSessionID     = "некорректный ID сессии"
	msgInvalidDateTime      = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgSessionNotFound      = "сессия не найдена"
	msgMissingCustomerName  = "отсутствует имя клиента"
	msgForbidden            = "доступ запрещен"
	msgProfessionalNotFound = "мастер не найден"
	msgInvalidTransition    = "выбор слота недоступен из текущего состояния сессии"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/slot - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	customerName, ok := middleware.GetCustomerName(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions/{id}/slot - Missing customer name")
		handlers.RespondUnauthorized(w, msgMissingCustomerName)
		return
	}

	var req StageSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(sessionID, customerName)
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/slot - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.service.StageSlot(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/slot - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrAccessDenied):
			h.logger.Warn("POST /sessions/{id}/slot - Access denied: session=%s, customer=%s", sessionID, customerName)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, sessions.ErrProfessionalNotFound):
			h.logger.Warn("POST /sessions/{id}/slot - Professional not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/slot - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateTime)

		case errors.Is(err, workflow.ErrInvalidTransition):
			h.logger.Warn("POST /sessions/{id}/slot - Invalid transition: session=%s", sessionID)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("POST /sessions/{id}/slot - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/slot - Slot staged: session=%s, %s %s, professional=%d",
		sessionID, req.Date, req.StartTime, req.ProfessionalID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
