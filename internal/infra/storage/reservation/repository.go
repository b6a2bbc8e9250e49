package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/tablebook/reservation-service/internal/domain"
	"github.com/tablebook/reservation-service/pkg/dbmetrics"
	"github.com/tablebook/reservation-service/pkg/psqlbuilder"
	"github.com/tablebook/reservation-service/pkg/types"
)

// uqSlotConstraint имя частичного уникального индекса на
// (location_id, table_id, date, time_from) WHERE status IN ('confirmed', 'in_progress')
const uqSlotConstraint = "uq_reservations_slot"

var reservationColumns = []string{
	"id",
	"location_id",
	"table_id",
	"date",
	"time_from",
	"time_to",
	"guest_count",
	"status",
	"owner_id",
	"waiter_id",
	"feedback_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// ID должен быть сгенерирован вызывающей стороной (UUID)
// При конфликте по слоту возвращает ErrSlotTaken
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"location_id",
			"table_id",
			"date",
			"time_from",
			"time_to",
			"guest_count",
			"status",
			"owner_id",
			"waiter_id",
			"feedback_id",
		).
		Values(
			reservation.ID,
			reservation.LocationID,
			reservation.TableID,
			reservation.Date,
			reservation.TimeFrom,
			reservation.TimeTo,
			reservation.GuestCount,
			reservation.Status,
			reservation.OwnerID,
			reservation.WaiterID,
			reservation.FeedbackID,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		if isUniqueViolation(err, uqSlotConstraint) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку - GetByID предшествует изменению
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	reservation, err := scanReservation(row)
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// GetByOwner получает список бронирований владельца
// Опционально фильтрует по статусу
func (r *Repository) GetByOwner(ctx context.Context, ownerID string, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("date DESC, time_from DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// GetByLocationWithFilter получает бронирования локации с гибкой фильтрацией
// Поддерживает фильтрацию по столу, периоду, статусу и включению отменённых
//
// Примеры использования:
//
// 1. Активные бронирования локации:
//    filter := domain.LocationReservationsFilter{LocationID: 123}
//
// 2. Бронирования стола на конкретную дату (для расчёта доступности):
//    date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
//    filter := domain.LocationReservationsFilter{LocationID: 123, TableID: &tableID, StartDate: &date, EndDate: &date}
//
// 3. Все бронирования включая отменённые:
//    filter := domain.LocationReservationsFilter{LocationID: 123, IncludeInactive: true}
func (r *Repository) GetByLocationWithFilter(ctx context.Context, filter domain.LocationReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"location_id": filter.LocationID})

	if filter.TableID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"table_id": *filter.TableID})
	}

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCancelled)})
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate) {
		// Для конкретной даты сортируем по времени начала
		selectBuilder = selectBuilder.OrderBy("time_from ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("date DESC, time_from DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocationWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocationWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// GetNonCancelled получает все неотменённые бронирования
// Используется планировщиком статусов для прохода по расписанию
func (r *Repository) GetNonCancelled(ctx context.Context) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		OrderBy("date ASC, time_from ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetNonCancelled - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetNonCancelled - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// Update перезаписывает изменяемые поля бронирования
// id, owner_id, created_at и status не трогает - редактирование сохраняет
// идентичность и историю статуса
func (r *Repository) Update(ctx context.Context, reservation *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("table_id", reservation.TableID).
		Set("date", reservation.Date).
		Set("time_from", reservation.TimeFrom).
		Set("time_to", reservation.TimeTo).
		Set("guest_count", reservation.GuestCount).
		Set("waiter_id", reservation.WaiterID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": reservation.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err, uqSlotConstraint) {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Update")
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "UpdateStatus")
}

// UpdateSchedule переносит бронирование на новые дату и время
// Используется операцией postpone
func (r *Repository) UpdateSchedule(ctx context.Context, id string, date time.Time, timeFrom, timeTo types.TimeString, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("date", date).
		Set("time_from", timeFrom).
		Set("time_to", timeTo).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "UpdateSchedule")
}

// SetFeedbackID привязывает отзыв к бронированию
func (r *Repository) SetFeedbackID(ctx context.Context, id string, feedbackID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("feedback_id", feedbackID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetFeedbackID - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetFeedbackID - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "SetFeedbackID")
}

// Delete физически удаляет бронирование без tombstone
// Используется только staff-отменой; владельческая отмена делает soft-cancel
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Delete")
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var reservation domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&reservation.ID,
		&reservation.LocationID,
		&reservation.TableID,
		&reservation.Date,
		&reservation.TimeFrom,
		&reservation.TimeTo,
		&reservation.GuestCount,
		&reservation.Status,
		&reservation.OwnerID,
		&reservation.WaiterID,
		&reservation.FeedbackID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// isUniqueViolation проверяет нарушение конкретного уникального ограничения
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && pqErr.Constraint == constraint
	}
	return false
}
