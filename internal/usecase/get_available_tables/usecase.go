package get_available_tables

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tablebook/reservation-service/internal/domain"
	catalogClient "github.com/tablebook/reservation-service/internal/integrations/tablecatalog"
)

// UseCase use case для поиска свободных столов и слотов
type UseCase struct {
	reservationRepo ReservationRepository
	catalogClient   TableCatalogClient
	timezone        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	catalogClient TableCatalogClient,
	timezone *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		catalogClient:   catalogClient,
		timezone:        timezone,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case поиска свободных столов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTables: location=%d, date=%s, earliest=%s, guests=%d",
		req.LocationID, req.Date.Format(domain.DateFormat), req.EarliestTime, req.GuestCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTables: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем столы локации из каталога
	tables, err := uc.catalogClient.GetTables(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrLocationNotFound) {
			uc.logger.Warn("GetAvailableTables: location id=%d not found", req.LocationID)
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("GetAvailableTables: failed to get tables for location id=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}

	// 4. Фильтруем сетку слотов по желаемому времени и текущему моменту
	candidates := candidateSlots(req.Date, req.EarliestTime, now, uc.timezone)
	if len(candidates) == 0 {
		uc.logger.Info("GetAvailableTables: no candidate slots for location=%d, date=%s",
			req.LocationID, req.Date.Format(domain.DateFormat))
		return &Response{
			LocationID: req.LocationID,
			Date:       req.Date,
			Tables:     []domain.TableAvailability{},
		}, nil
	}

	// 5. Получаем занимающие слоты бронирования локации на эту дату
	filter := domain.LocationReservationsFilter{
		LocationID:      req.LocationID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false, // Отменённые слот не занимают
	}

	reservations, err := uc.reservationRepo.GetByLocationWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableTables: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 6. Для каждого подходящего по вместимости стола вычисляем свободные слоты
	// Столы без единого свободного слота в ответ не попадают
	result := make([]domain.TableAvailability, 0, len(tables))
	for _, table := range tables {
		if table.Capacity < req.GuestCount {
			continue
		}

		freeSlots := removeBookedSlots(candidates, table.ID, reservations)
		if len(freeSlots) == 0 {
			continue
		}

		result = append(result, domain.TableAvailability{
			TableID:  table.ID,
			Capacity: table.Capacity,
			Slots:    freeSlots,
		})
	}

	uc.logger.Info("GetAvailableTables: %d tables with free slots for location=%d, date=%s",
		len(result), req.LocationID, req.Date.Format(domain.DateFormat))

	return &Response{
		LocationID: req.LocationID,
		Date:       req.Date,
		Tables:     result,
	}, nil
}
