package create_session

import (
	"errors"
	"io"
	"net/http"

	"github.com/glowdesk/booking-service/internal/api/handlers"
	"github.com/glowdesk/booking-service/internal/api/middleware"
	"github.com/glowdesk/booking-service/internal/service/sessions"
	"github.com/glowdesk/booking-service/internal/workflow"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingCustomerName = "отсутствует имя клиента"
	msgServiceNotFound     = "услуга не найдена"
	msgServiceInactive     = "услуга недоступна для записи"
	msgInvalidCustomerName = "некорректное имя клиента"
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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerName, ok := middleware.GetCustomerName(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions - Missing customer name")
		handlers.RespondUnauthorized(w, msgMissingCustomerName)
		return
	}

	// Тело опционально: сессия без предвыбранной услуги создается пустым POST
	var req CreateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.StartSession(r.Context(), req.ToServiceRequest(customerName))
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrServiceNotFound):
			h.logger.Warn("POST /sessions - Preselected service not found: customer=%s", customerName)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, workflow.ErrInactiveService):
			h.logger.Warn("POST /sessions - Preselected service inactive: customer=%s", customerName)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCustomerName)

		default:
			h.logger.Error("POST /sessions - Failed to start session: customer=%s, error=%v", customerName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session created: session=%s, customer=%s, state=%s",
		result.ID, customerName, result.State)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
