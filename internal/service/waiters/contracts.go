package waiters

import (
	"context"

	"github.com/tablebook/reservation-service/internal/domain"
)

// WaiterRepository интерфейс репозитория официантов
type WaiterRepository interface {
	// ListByLocation возвращает официантов локации в порядке сканирования (id ASC)
	ListByLocation(ctx context.Context, locationID int64) ([]*domain.Waiter, error)
	// IncrementAssigned атомарно увеличивает счётчик назначений
	IncrementAssigned(ctx context.Context, waiterID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
