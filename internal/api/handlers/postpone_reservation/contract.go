package postpone_reservation

import (
	"context"
	"time"

	"github.com/tablebook/reservation-service/pkg/types"
)

type ReservationService interface {
	Postpone(ctx context.Context, id string, date time.Time, timeFrom, timeTo types.TimeString) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
