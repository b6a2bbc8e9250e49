package waiter

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/tablebook/reservation-service/internal/domain"
	"github.com/tablebook/reservation-service/pkg/dbmetrics"
	"github.com/tablebook/reservation-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с официантами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория официантов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByLocation получает официантов локации в порядке регистрации (id ASC)
// Порядок сканирования значим: при равных счётчиках выбирается первый
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы конкурентные
// назначения не прочитали одинаковые счётчики
func (r *Repository) ListByLocation(ctx context.Context, locationID int64) ([]*domain.Waiter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"email",
		"location_id",
		"lifetime_assigned_count",
	).
		From("waiters").
		Where(squirrel.Eq{"location_id": locationID}).
		OrderBy("id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByLocation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByLocation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	waiters := make([]*domain.Waiter, 0)
	for rows.Next() {
		var w domain.Waiter
		if err := rows.Scan(&w.ID, &w.Email, &w.LocationID, &w.LifetimeAssignedCount); err != nil {
			return nil, fmt.Errorf("%w: ListByLocation - scan row: %v", ErrScanRow, err)
		}
		waiters = append(waiters, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByLocation - rows error: %v", ErrScanRow, err)
	}

	return waiters, nil
}

// IncrementAssigned атомарно увеличивает счётчик назначений официанта
// Счётчик монотонный: уменьшения нет ни при отмене, ни при завершении брони
func (r *Repository) IncrementAssigned(ctx context.Context, waiterID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("waiters").
		Set("lifetime_assigned_count", squirrel.Expr("lifetime_assigned_count + 1")).
		Where(squirrel.Eq{"id": waiterID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementAssigned - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementAssigned - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementAssigned - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrWaiterNotFound
	}

	return nil
}
