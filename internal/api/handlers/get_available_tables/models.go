package get_available_tables

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/tablebook/reservation-service/internal/domain"
	getAvailableTables "github.com/tablebook/reservation-service/internal/usecase/get_available_tables"
	"github.com/tablebook/reservation-service/pkg/types"
)

// TableAvailabilityResponse свободные слоты одного стола
type TableAvailabilityResponse struct {
	TableID  int64    `json:"tableId"`
	Capacity int      `json:"capacity"`
	Slots    []string `json:"slots"` // ["15:45", "17:30"]
}

// AvailableTablesResponse HTTP response model
type AvailableTablesResponse struct {
	LocationID int64                       `json:"locationId"`
	Date       string                      `json:"date"`
	Tables     []TableAvailabilityResponse `json:"tables"`
}

// parseQuery разбирает query параметры в модель use case
// Обязательны date, earliestTime и guestCount
func parseQuery(locationID int64, query url.Values) (*getAvailableTables.Request, error) {
	dateStr := query.Get("date")
	if dateStr == "" {
		return nil, fmt.Errorf("date is required")
	}
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	earliestStr := query.Get("earliestTime")
	if earliestStr == "" {
		return nil, fmt.Errorf("earliestTime is required")
	}
	earliestTime, err := types.NewTimeStringFromString(earliestStr)
	if err != nil {
		return nil, err
	}

	guestCountStr := query.Get("guestCount")
	if guestCountStr == "" {
		return nil, fmt.Errorf("guestCount is required")
	}
	guestCount, err := strconv.Atoi(guestCountStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableTables.Request{
		LocationID:   locationID,
		Date:         date,
		EarliestTime: earliestTime,
		GuestCount:   guestCount,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTables.Response) *AvailableTablesResponse {
	out := &AvailableTablesResponse{
		LocationID: resp.LocationID,
		Date:       resp.Date.Format(domain.DateFormat),
		Tables:     make([]TableAvailabilityResponse, 0, len(resp.Tables)),
	}

	for _, t := range resp.Tables {
		slots := make([]string, 0, len(t.Slots))
		for _, s := range t.Slots {
			slots = append(slots, s.String())
		}
		out.Tables = append(out.Tables, TableAvailabilityResponse{
			TableID:  t.TableID,
			Capacity: t.Capacity,
			Slots:    slots,
		})
	}

	return out
}
