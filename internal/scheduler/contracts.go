package scheduler

import (
	"context"

	"github.com/tablebook/reservation-service/internal/domain"
)

// ReservationSource источник активных бронирований для прохода планировщика
type ReservationSource interface {
	GetNonCancelled(ctx context.Context) ([]*domain.Reservation, error)
}

// StatusTransitioner применяет системный переход статуса
type StatusTransitioner interface {
	TransitionAsSystem(ctx context.Context, id string, newStatus domain.ReservationStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
