package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/glowdesk/booking-service/internal/api/handlers"
	"github.com/glowdesk/booking-service/internal/api/middleware"
	"github.com/glowdesk/booking-service/internal/domain"
	getAvailability "github.com/glowdesk/booking-service/internal/usecase/get_availability"
)

const (
	msgInvalidSessionID    = "некорректный ID сессии"
	msgInvalidWeekOf       = "некорректный параметр weekOf, ожидается YYYY-MM-DD"
	msgSessionNotFound     = "сессия не найдена"
	msgMissingCustomerName = "отсутствует имя клиента"
	msgForbidden           = "доступ запрещен"
	msgEmptySelection      = "выберите хотя бы одну услугу перед просмотром слотов"
)

type Handler struct {
	useCase      GetAvailabilityUseCase
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(useCase GetAvailabilityUseCase, timeProvider TimeProvider, logger Logger) *Handler {
	return &Handler{
		useCase:      useCase,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/availability?weekOf=YYYY-MM-DD
// Без weekOf сетка строится с текущего дня.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("GET /sessions/{id}/availability - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	customerName, ok := middleware.GetCustomerName(r.Context())
	if !ok {
		h.logger.Warn("GET /sessions/{id}/availability - Missing customer name")
		handlers.RespondUnauthorized(w, msgMissingCustomerName)
		return
	}

	weekOf := h.timeProvider.Now()
	if raw := r.URL.Query().Get("weekOf"); raw != "" {
		weekOf, err = time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /sessions/{id}/availability - Invalid weekOf %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidWeekOf)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), getAvailability.Request{
		SessionID:    sessionID,
		CustomerName: customerName,
		WeekOf:       weekOf,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id}/availability - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, getAvailability.ErrAccessDenied):
			h.logger.Warn("GET /sessions/{id}/availability - Access denied: session=%s, customer=%s", sessionID, customerName)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, getAvailability.ErrEmptySelection):
			h.logger.Warn("GET /sessions/{id}/availability - Empty selection: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgEmptySelection)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /sessions/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWeekOf)

		default:
			h.logger.Error("GET /sessions/{id}/availability - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{id}/availability - Grid built: session=%s, week=%s, duration=%d min",
		sessionID, result.WeekStart, result.RequiredDurationMinutes)
	handlers.RespondJSON(w, http.StatusOK, result)
}
