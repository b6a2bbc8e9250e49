package edit_reservation

import (
	"context"
	"time"

	"github.com/tablebook/reservation-service/internal/domain"
	"github.com/tablebook/reservation-service/internal/integrations/tablecatalog"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	Update(ctx context.Context, reservation *domain.Reservation) error
}

// TableCatalogClient интерфейс клиента каталога столов
type TableCatalogClient interface {
	GetTables(ctx context.Context, locationID int64) ([]tablecatalog.Table, error)
}

// WaiterAssigner интерфейс подбора официанта
type WaiterAssigner interface {
	AssignLeastBusy(ctx context.Context, locationID int64) (string, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
