package reservations

import (
	"context"
	"time"

	"github.com/tablebook/reservation-service/internal/domain"
	"github.com/tablebook/reservation-service/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	GetByOwner(ctx context.Context, ownerID string, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	GetByLocationWithFilter(ctx context.Context, filter domain.LocationReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error
	UpdateSchedule(ctx context.Context, id string, date time.Time, timeFrom, timeTo types.TimeString, status domain.ReservationStatus) error
	SetFeedbackID(ctx context.Context, id string, feedbackID string) error
	Delete(ctx context.Context, id string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
