package get_location_reservations

import (
	"context"

	"github.com/tablebook/reservation-service/internal/service/reservations/models"
)

type ReservationService interface {
	GetLocationReservations(ctx context.Context, req *models.GetLocationReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
