package get_available_tables

import (
	"context"
	"time"

	"github.com/tablebook/reservation-service/internal/domain"
	"github.com/tablebook/reservation-service/internal/integrations/tablecatalog"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetByLocationWithFilter получает бронирования локации на дату
	GetByLocationWithFilter(ctx context.Context, filter domain.LocationReservationsFilter) ([]*domain.Reservation, error)
}

// TableCatalogClient интерфейс клиента каталога столов
type TableCatalogClient interface {
	GetTables(ctx context.Context, locationID int64) ([]tablecatalog.Table, error)
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
