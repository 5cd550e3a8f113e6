package apply_transition

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
	msgUnknownAction       = "неизвестное действие"
	msgEmptySelection      = "выберите хотя бы одну услугу"
	msgInvalidTransition   = "переход недоступен из текущего состояния сессии"
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

// Handle POST /api/v1/sessions/{sessionId}/transitions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/transitions - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	customerName, ok := middleware.GetCustomerName(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions/{id}/transitions - Missing customer name")
		handlers.RespondUnauthorized(w, msgMissingCustomerName)
		return
	}

	var req TransitionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/transitions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ApplyTransition(r.Context(), req.ToServiceRequest(sessionID, customerName))
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/transitions - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrAccessDenied):
			h.logger.Warn("POST /sessions/{id}/transitions - Access denied: session=%s, customer=%s", sessionID, customerName)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, sessions.ErrUnknownAction):
			h.logger.Warn("POST /sessions/{id}/transitions - Unknown action: %q", req.Action)
			handlers.RespondBadRequest(w, msgUnknownAction)

		case errors.Is(err, workflow.ErrEmptySelection):
			h.logger.Warn("POST /sessions/{id}/transitions - Empty selection: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgEmptySelection)

		case errors.Is(err, workflow.ErrInvalidTransition), errors.Is(err, workflow.ErrNoPendingConfirmation):
			h.logger.Warn("POST /sessions/{id}/transitions - Invalid transition: session=%s, action=%s", sessionID, req.Action)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("POST /sessions/{id}/transitions - Failed: session=%s, action=%s, error=%v", sessionID, req.Action, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/transitions - Applied: session=%s, action=%s -> state=%s",
		sessionID, req.Action, result.State)
	handlers.RespondJSON(w, http.StatusOK, result)
}
