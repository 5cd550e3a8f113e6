package get_professionals

import (
	"net/http"

	"github.com/glowdesk/booking-service/internal/api/handlers"
)

// ProfessionalResponse мастер салона в HTTP ответе
type ProfessionalResponse struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"displayName"`
}

// ProfessionalListResponse список мастеров
type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
}

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

// Handle GET /api/v1/catalog/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionals, err := h.service.ListProfessionals(r.Context())
	if err != nil {
		h.logger.Error("GET /catalog/professionals - Failed to list professionals: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	out := make([]ProfessionalResponse, len(professionals))
	for i, p := range professionals {
		out[i] = ProfessionalResponse{ID: p.ID, DisplayName: p.DisplayName}
	}

	h.logger.Info("GET /catalog/professionals - Returned %d professionals", len(professionals))
	handlers.RespondJSON(w, http.StatusOK, &ProfessionalListResponse{Professionals: out})
}
