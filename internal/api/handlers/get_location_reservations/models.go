package get_location_reservations

import (
	"net/url"
	"strconv"
	"time"

	"github.com/tablebook/reservation-service/internal/domain"
	"github.com/tablebook/reservation-service/internal/service/reservations/models"
)

// parseQuery разбирает query параметры в запрос к сервису
// Поддерживаются tableId, startDate, endDate, status, includeInactive
func parseQuery(locationID int64, query url.Values) (*models.GetLocationReservationsRequest, error) {
	req := &models.GetLocationReservationsRequest{
		LocationID: locationID,
	}

	if v := query.Get("tableId"); v != "" {
		tableID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.TableID = &tableID
	}

	if v := query.Get("startDate"); v != "" {
		startDate, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if v := query.Get("endDate"); v != "" {
		endDate, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if v := query.Get("status"); v != "" {
		status := v
		req.Status = &status
	}

	if v := query.Get("includeInactive"); v != "" {
		includeInactive, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
