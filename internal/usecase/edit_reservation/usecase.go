package edit_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	reservationRepo "github.com/tablebook/reservation-service/internal/infra/storage/reservation"
	catalogClient "github.com/tablebook/reservation-service/internal/integrations/tablecatalog"
	"github.com/tablebook/reservation-service/internal/service/waiters"
	"github.com/tablebook/reservation-service/internal/validation"
)

// UseCase use case для изменения бронирования владельцем
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

// Execute выполняет use case изменения бронирования
// Изменение заменяет стол/дату/время/гостей и переназначает официанта,
// сохраняя id, владельца, createdAt и текущий статус
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EditReservation: id=%s, requester=%s", req.ReservationID, req.RequesterID)

	// Текущее время берём в опорной таймзоне сервиса: проверки "сегодня"
	// и "время в прошлом" определяются в ней, а не в зоне сервера
	now := uc.timeProvider.Now().In(uc.timezone)

	// 1. Получаем бронирование
	reservation, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("EditReservation: reservation id=%s not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("EditReservation: repository error for id=%s: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	// 2. Окно редактирования: 30 минут после создания
	if !validation.IsWithin30MinutesOfCreation(reservation.CreatedAt, now) {
		uc.logger.Warn("EditReservation: edit window expired for id=%s (created at %s)",
			req.ReservationID, reservation.CreatedAt.Format("15:04:05"))
		return nil, ErrTooLate
	}

	// 3. Изменять бронирование может только владелец
	if !reservation.IsOwnedBy(req.RequesterID) {
		uc.logger.Warn("EditReservation: requester %s is not the owner of id=%s", req.RequesterID, req.ReservationID)
		return nil, ErrForbidden
	}

	// 4. Отменённое бронирование изменить нельзя
	if reservation.IsCancelled() {
		uc.logger.Warn("EditReservation: reservation id=%s is cancelled", req.ReservationID)
		return nil, ErrInvalidState
	}

	// 5. Повторная валидация новых полей - все нарушения сразу
	if err := validation.ValidateReservationRequest(&validation.ReservationRequest{
		LocationID: reservation.LocationID,
		TableID:    req.TableID,
		Date:       req.Date,
		TimeFrom:   req.TimeFrom,
		TimeTo:     req.TimeTo,
		GuestCount: req.GuestCount,
		OwnerID:    reservation.OwnerID,
	}, now); err != nil {
		uc.logger.Warn("EditReservation: validation failed for id=%s: %v", req.ReservationID, err)
		return nil, err
	}

	// 6. Проверяем новый стол по каталогу
	tables, err := uc.catalogClient.GetTables(ctx, reservation.LocationID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrLocationNotFound) {
			// Локация существующей брони пропала из каталога - считаем стол не найденным
			uc.logger.Warn("EditReservation: location id=%d of reservation id=%s not found in catalog",
				reservation.LocationID, req.ReservationID)
			return nil, ErrTableNotFound
		}
		uc.logger.Error("EditReservation: failed to get tables for location id=%d: %v", reservation.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}

	var capacity int
	found := false
	for _, t := range tables {
		if t.ID == req.TableID {
			capacity = t.Capacity
			found = true
			break
		}
	}
	if !found {
		uc.logger.Warn("EditReservation: table id=%d not found at location id=%d", req.TableID, reservation.LocationID)
		return nil, ErrTableNotFound
	}
	if req.GuestCount > capacity {
		uc.logger.Warn("EditReservation: guest count %d exceeds capacity %d of table id=%d",
			req.GuestCount, capacity, req.TableID)
		return nil, ErrCapacityExceeded
	}

	// 7. Переназначение официанта и перезапись - в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		waiterID, err := uc.waiterAssigner.AssignLeastBusy(txCtx, reservation.LocationID)
		if err != nil {
			if errors.Is(err, waiters.ErrNoWaiters) {
				return ErrNoWaiters
			}
			uc.logger.Error("EditReservation: failed to assign waiter: %v", err)
			return fmt.Errorf("%w: failed to assign waiter: %v", ErrInternal, err)
		}

		reservation.TableID = req.TableID
		reservation.Date = req.Date
		reservation.TimeFrom = req.TimeFrom
		reservation.TimeTo = req.TimeTo
		reservation.GuestCount = req.GuestCount
		reservation.WaiterID = waiterID

		if err := uc.reservationRepo.Update(txCtx, reservation); err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("EditReservation: failed to update reservation id=%s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	reservation.UpdatedAt = now

	uc.logger.Info("EditReservation: successfully updated reservation id=%s, waiter=%s",
		reservation.ID, reservation.WaiterID)

	return &Response{
		ID:         reservation.ID,
		LocationID: reservation.LocationID,
		TableID:    reservation.TableID,
		Date:       reservation.Date,
		TimeFrom:   reservation.TimeFrom,
		TimeTo:     reservation.TimeTo,
		GuestCount: reservation.GuestCount,
		Status:     string(reservation.Status),
		OwnerID:    reservation.OwnerID,
		WaiterID:   reservation.WaiterID,
		CreatedAt:  reservation.CreatedAt,
		UpdatedAt:  reservation.UpdatedAt,
	}, nil
}
