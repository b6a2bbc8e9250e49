package waiters

import (
	"context"
	"fmt"

	"github.com/tablebook/reservation-service/internal/domain"
)

// Service сервис распределения бронирований между официантами
//
// Счётчик назначений - это агрегат данного сервиса: никто другой его
// не изменяет. Счётчик монотонный, поэтому распределение честно
// относительно всего стажа официанта, а не текущей загрузки - это
// осознанное поведение, не балансировщик нагрузки
type Service struct {
	waiterRepo WaiterRepository
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса официантов
func NewService(waiterRepo WaiterRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		waiterRepo: waiterRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// AssignLeastBusy выбирает наименее загруженного официанта локации
// и атомарно увеличивает его счётчик назначений
//
// Правила выбора:
// - нет официантов - ErrNoWaiters
// - у всех счётчик 0 - первый в порядке сканирования
// - иначе минимальный счётчик, при равенстве - первый в порядке сканирования
func (s *Service) AssignLeastBusy(ctx context.Context, locationID int64) (string, error) {
	var chosen *domain.Waiter

	// Выбор и инкремент - одно атомарное read-modify-write:
	// внутри транзакции список блокируется (FOR UPDATE)
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		list, err := s.waiterRepo.ListByLocation(txCtx, locationID)
		if err != nil {
			s.logger.Error("AssignLeastBusy: failed to list waiters for location=%d: %v", locationID, err)
			return fmt.Errorf("%w: list waiters: %v", ErrInternal, err)
		}

		if len(list) == 0 {
			s.logger.Warn("AssignLeastBusy: no waiters at location=%d", locationID)
			return ErrNoWaiters
		}

		chosen = pickLeastBusy(list)

		if err := s.waiterRepo.IncrementAssigned(txCtx, chosen.ID); err != nil {
			s.logger.Error("AssignLeastBusy: failed to increment counter for waiter=%s: %v", chosen.Email, err)
			return fmt.Errorf("%w: increment counter: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return "", err
	}

	s.logger.Info("AssignLeastBusy: location=%d -> waiter=%s (count %d -> %d)",
		locationID, chosen.Email, chosen.LifetimeAssignedCount, chosen.LifetimeAssignedCount+1)

	return chosen.Email, nil
}

// pickLeastBusy выбирает официанта с минимальным счётчиком
// Строгое "меньше" гарантирует победу первого в порядке сканирования
// при равных счётчиках; частный случай "у всех 0" сводится к тому же
func pickLeastBusy(list []*domain.Waiter) *domain.Waiter {
	chosen := list[0]
	for _, w := range list[1:] {
		if w.LifetimeAssignedCount < chosen.LifetimeAssignedCount {
			chosen = w
		}
	}
	return chosen
}
