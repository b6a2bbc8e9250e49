package cancel_reservation

import "context"

type ReservationService interface {
	CancelByOwner(ctx context.Context, id string, requesterID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
