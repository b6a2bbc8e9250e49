package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tablebook/reservation-service/internal/domain"
	reservationRepo "github.com/tablebook/reservation-service/internal/infra/storage/reservation"
	catalogClient "github.com/tablebook/reservation-service/internal/integrations/tablecatalog"
	"github.com/tablebook/reservation-service/internal/service/waiters"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	catalogClient   TableCatalogClient
	waiterAssigner  WaiterAssigner
	txManager       TransactionManager
	timezone        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	catalogClient TableCatalogClient,
	waiterAssigner WaiterAssigner,
	txManager TransactionManager,
	timezone *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		catalogClient:   catalogClient,
		waiterAssigner:  waiterAssigner,
		txManager:       txManager,
		timezone:        timezone,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Предварительной сверки с поиском свободных столов здесь нет - вызывающая
// сторона обязана запросить доступность заранее. Гонку check-then-act
// закрывает условная запись: уникальный индекс на (локация, стол, дата, слот)
// детерминированно отдаёт ErrSlotTaken проигравшему
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: owner=%s, location=%d, table=%d, date=%s, time=%s-%s, guests=%d",
		req.OwnerID, req.LocationID, req.TableID, req.Date.Format(domain.DateFormat),
		req.TimeFrom, req.TimeTo, req.GuestCount)

	// 1. Получаем текущее время в опорной таймзоне сервиса: "сегодня"
	// и "время в прошлом" везде определяются в ней, а не в зоне сервера
	now := uc.timeProvider.Now().In(uc.timezone)

	// 2. Валидация входных данных - все нарушения сразу
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем столы локации из каталога
	tables, err := uc.catalogClient.GetTables(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrLocationNotFound) {
			uc.logger.Warn("CreateReservation: location id=%d not found", req.LocationID)
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("CreateReservation: failed to get tables for location id=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}

	// 4. Проверяем, что стол принадлежит локации
	table := findTable(tables, req.TableID)
	if table == nil {
		uc.logger.Warn("CreateReservation: table id=%d not found at location id=%d", req.TableID, req.LocationID)
		return nil, ErrTableNotFound
	}

	// 5. Проверяем вместимость стола
	if req.GuestCount > table.Capacity {
		uc.logger.Warn("CreateReservation: guest count %d exceeds capacity %d of table id=%d",
			req.GuestCount, table.Capacity, req.TableID)
		return nil, ErrCapacityExceeded
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 6. Назначение официанта и вставка - в одной сериализуемой транзакции,
	// чтобы счётчик официанта не уехал при откате вставки
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Подбираем наименее загруженного официанта локации
		waiterID, err := uc.waiterAssigner.AssignLeastBusy(txCtx, req.LocationID)
		if err != nil {
			if errors.Is(err, waiters.ErrNoWaiters) {
				uc.logger.Warn("CreateReservation: no waiters at location id=%d", req.LocationID)
				return ErrNoWaiters
			}
			uc.logger.Error("CreateReservation: failed to assign waiter: %v", err)
			return fmt.Errorf("%w: failed to assign waiter: %v", ErrInternal, err)
		}

		// 6.2. Собираем бронирование
		reservation := &domain.Reservation{
			ID:         uuid.NewString(),
			LocationID: req.LocationID,
			TableID:    req.TableID,
			Date:       req.Date,
			TimeFrom:   req.TimeFrom,
			TimeTo:     req.TimeTo,
			GuestCount: req.GuestCount,
			Status:     domain.StatusConfirmed,
			OwnerID:    req.OwnerID,
			WaiterID:   waiterID,
		}

		// 6.3. Сохраняем; занятый слот приходит ошибкой от уникального индекса
		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateReservation: slot taken, location=%d, table=%d, date=%s, time=%s",
					req.LocationID, req.TableID, req.Date.Format(domain.DateFormat), req.TimeFrom)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%s, waiter=%s",
		result.ID, result.WaiterID)

	return &Response{
		ID:         result.ID,
		LocationID: result.LocationID,
		TableID:    result.TableID,
		Date:       result.Date,
		TimeFrom:   result.TimeFrom,
		TimeTo:     result.TimeTo,
		GuestCount: result.GuestCount,
		Status:     string(result.Status),
		OwnerID:    result.OwnerID,
		WaiterID:   result.WaiterID,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
