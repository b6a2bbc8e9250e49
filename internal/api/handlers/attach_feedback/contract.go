package attach_feedback

import "context"

type ReservationService interface {
	AttachFeedback(ctx context.Context, id string, feedbackID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
