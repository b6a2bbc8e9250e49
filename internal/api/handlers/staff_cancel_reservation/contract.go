package staff_cancel_reservation

import "context"

type ReservationService interface {
	CancelByStaff(ctx context.Context, id string, waiterID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
