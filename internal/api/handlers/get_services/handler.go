package get_services

import (
	"net/http"

	"github.com/glowdesk/booking-service/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.ListActiveServices(r.Context())
	if err != nil {
		h.logger.Error("GET /catalog/services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /catalog/services - Returned %d services", len(services))
	handlers.RespondJSON(w, http.StatusOK, FromDomainServices(services))
}
