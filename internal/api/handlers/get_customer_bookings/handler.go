package get_customer_bookings

import (
	"errors"
	"net/http"

	"github.com/glowdesk/booking-service/internal/api/handlers"
	"github.com/glowdesk/booking-service/internal/api/middleware"
	"github.com/glowdesk/booking-service/internal/service/bookings"
	"github.com/glowdesk/booking-service/internal/service/bookings/models"
	"github.com/glowdesk/booking-service/pkg/ptr"
)

const (
	msgMissingCustomerName = "отсутствует имя клиента"
	msgInvalidStatus       = "некорректный статус бронирования"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/bookings?status=confirmed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerName, ok := middleware.GetCustomerName(r.Context())
	if !ok {
		h.logger.Warn("GET /customers/bookings - Missing customer name")
		handlers.RespondUnauthorized(w, msgMissingCustomerName)
		return
	}

	req := &models.GetCustomerBookingsRequest{CustomerName: customerName}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}

	result, err := h.service.GetCustomerBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /customers/bookings - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /customers/bookings - Failed: customer=%s, error=%v", customerName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/bookings - Returned %d bookings for customer=%s", result.Total, customerName)
	handlers.RespondJSON(w, http.StatusOK, result)
}
