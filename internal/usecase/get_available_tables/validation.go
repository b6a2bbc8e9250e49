package get_available_tables

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	if req.GuestCount <= 0 {
		return fmt.Errorf("%w: guestCount must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Желаемое время опционально, но если задано - должно быть корректным
	if !req.EarliestTime.IsZero() {
		if err := req.EarliestTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid earliestTime format: %v", ErrInvalidInput, err)
		}
	}

	return nil
}
