package postpone_reservation

import (
	"time"

	"github.com/tablebook/reservation-service/internal/domain"
	"github.com/tablebook/reservation-service/pkg/types"
)

// PostponeReservationRequest HTTP request model
type PostponeReservationRequest struct {
	Date     string `json:"date"`     // "2025-10-15"
	TimeFrom string `json:"timeFrom"` // "14:00"
	TimeTo   string `json:"timeTo"`   // "15:30"
}

// Parse разбирает дату и времена запроса
func (r *PostponeReservationRequest) Parse() (time.Time, types.TimeString, types.TimeString, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return time.Time{}, "", "", err
	}

	timeFrom, err := types.NewTimeStringFromString(r.TimeFrom)
	if err != nil {
		return time.Time{}, "", "", err
	}

	timeTo, err := types.NewTimeStringFromString(r.TimeTo)
	if err != nil {
		return time.Time{}, "", "", err
	}

	return date, timeFrom, timeTo, nil
}
