package get_reservation

import (
	"context"

	"github.com/tablebook/reservation-service/internal/service/reservations/models"
)

type ReservationService interface {
	GetByID(ctx context.Context, id string, requesterID string) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
