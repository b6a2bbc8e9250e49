package create_reservation

import (
	"time"

	"github.com/tablebook/reservation-service/internal/integrations/tablecatalog"
	"github.com/tablebook/reservation-service/internal/validation"
)

// validateRequest собирает все нарушения полей заявки в одну ошибку
// validation.Error, как того требует контракт валидации
func validateRequest(req *Request, now time.Time) error {
	return validation.ValidateReservationRequest(&validation.ReservationRequest{
		LocationID: req.LocationID,
		TableID:    req.TableID,
		Date:       req.Date,
		TimeFrom:   req.TimeFrom,
		TimeTo:     req.TimeTo,
		GuestCount: req.GuestCount,
		OwnerID:    req.OwnerID,
	}, now)
}

// findTable ищет стол в списке столов локации
func findTable(tables []tablecatalog.Table, tableID int64) *tablecatalog.Table {
	for i := range tables {
		if tables[i].ID == tableID {
			return &tables[i]
		}
	}
	return nil
}
