package stage_slot

import (
	"time"

	"github.com/google/uuid"

	"github.com/glowdesk/booking-service/internal/domain"
	"github.com/glowdesk/booking-service/internal/service/sessions/models"
	"github.com/glowdesk/booking-service/pkg/types"
)

// StageSlotRequest тело запроса выбора слота
type StageSlotRequest struct {
	Date           string `json:"date"`      // YYYY-MM-DD
	StartTime      string `json:"startTime"` // HH:MM
	ProfessionalID int64  `json:"professionalId"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
// с парсингом даты и времени
func (r *StageSlotRequest) ToServiceRequest(sessionID uuid.UUID, customerName string) (*models.StageSlotRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &models.StageSlotRequest{
		SessionID:      sessionID,
		CustomerName:   customerName,
		Date:           date,
		StartTime:      startTime,
		ProfessionalID: r.ProfessionalID,
	}, nil
}
