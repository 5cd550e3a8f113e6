package toggle_service

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
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidSessionID    = "некорректный ID сессии"
	msgSessionNotFound     = "сессия не найдена"
	msgMissingCustomerName = "отсутствует имя клиента"
	msgForbidden           = "доступ запрещен"
	msgServiceNotFound     = "услуга не найдена"
	msgServiceInactive     = "услуга недоступна для записи"
	msgSelectionLocked     = "корзина услуг уже зафиксирована, вернитесь к выбору услуг"
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

// Handle POST /api/v1/sessions/{sessionId}/services/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/services/toggle - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	customerName, ok := middleware.GetCustomerName(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions/{id}/services/toggle - Missing customer name")
		handlers.RespondUnauthorized(w, msgMissingCustomerName)
		return
	}

	var req ToggleServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/services/toggle - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ToggleService(r.Context(), req.ToServiceRequest(sessionID, customerName))
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/services/toggle - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrAccessDenied):
			h.logger.Warn("POST /sessions/{id}/services/toggle - Access denied: session=%s, customer=%s", sessionID, customerName)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, sessions.ErrServiceNotFound):
			h.logger.Warn("POST /sessions/{id}/services/toggle - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, workflow.ErrInactiveService):
			h.logger.Warn("POST /sessions/{id}/services/toggle - Service inactive: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, workflow.ErrSelectionLocked):
			h.logger.Warn("POST /sessions/{id}/services/toggle - Selection locked: session=%s", sessionID)
			handlers.RespondConflict(w, msgSelectionLocked)

		default:
			h.logger.Error("POST /sessions/{id}/services/toggle - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/services/toggle - Toggled: session=%s, service_id=%d, total=%d min",
		sessionID, req.ServiceID, result.TotalDurationMinutes)
	handlers.RespondJSON(w, http.StatusOK, result)
}
