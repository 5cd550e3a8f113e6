package get_availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/glowdesk/booking-service/pkg/types"
)

// Schedule рабочий график салона, задаёт строки сетки
type Schedule struct {
	OpenTime        types.TimeString
	CloseTime       types.TimeString
	SlotStepMinutes int
}

// Request входные данные запроса сетки доступности
type Request struct {
	SessionID    uuid.UUID
	CustomerName string
	WeekOf       time.Time // первый день семидневного окна
}

// Response сетка доступности на неделю
type Response struct {
	SessionID               uuid.UUID      `json:"sessionId"`
	WeekStart               string         `json:"weekStart"`
	RequiredDurationMinutes int            `json:"requiredDurationMinutes"`
	Professionals           []Professional `json:"professionals"`
	Days                    []Day          `json:"days"`
}

// Professional колонка сетки
type Professional struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"displayName"`
}

// Day один день недели с рядами слотов
type Day struct {
	Date   string `json:"date"`
	IsPast bool   `json:"isPast"`
	Rows   []Row  `json:"rows"`
}

// Row ряд сетки: время начала и ячейки по мастерам
type Row struct {
	StartTime types.TimeString `json:"startTime"`
	Cells     []Cell           `json:"cells"`
}

// Cell ячейка сетки для пары (время, мастер)
type Cell struct {
	ProfessionalID int64         `json:"professionalId"`
	Available      bool          `json:"available"`
	Occupied       *OccupiedCell `json:"occupied,omitempty"`
}

// OccupiedCell информация о бронировании, покрывающем ячейку
type OccupiedCell struct {
	CustomerName    string           `json:"customerName"`
	ServiceName     string           `json:"serviceName"`
	StartTime       types.TimeString `json:"startTime"`
	DurationMinutes int              `json:"durationMinutes"`
}
