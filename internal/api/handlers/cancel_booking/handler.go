package cancel_booking

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glowdesk/booking-service/internal/api/handlers"
	"github.com/glowdesk/booking-service/internal/api/middleware"
	"github.com/glowdesk/booking-service/internal/service/bookings"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidBookingID    = "некорректный ID бронирования"
	msgNotFound            = "бронирование не найдено"
	msgMissingCustomerName = "отсутствует имя клиента"
	msgForbidden           = "доступ запрещен"
	msgCannotCancel        = "бронирование нельзя отменить в текущем статусе"
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

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	customerName, ok := middleware.GetCustomerName(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Missing customer name")
		handlers.RespondUnauthorized(w, msgMissingCustomerName)
		return
	}

	// Причина отмены опциональна
	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.CancelBooking(r.Context(), req.ToServiceRequest(bookingID, customerName))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: booking_id=%d, customer=%s", bookingID, customerName)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Cannot cancel: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled: booking_id=%d, customer=%s", bookingID, customerName)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
