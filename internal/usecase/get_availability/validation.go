package get_availability

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req Request) error {
	if req.SessionID == uuid.Nil {
		return fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if req.WeekOf.IsZero() {
		return fmt.Errorf("%w: week start date is required", ErrInvalidInput)
	}
	return nil
}
