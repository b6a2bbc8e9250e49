package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tablebook/reservation-service/internal/domain"
	reservationRepo "github.com/tablebook/reservation-service/internal/infra/storage/reservation"
	"github.com/tablebook/reservation-service/internal/service/reservations/models"
	"github.com/tablebook/reservation-service/internal/validation"
	"github.com/tablebook/reservation-service/pkg/types"
)

// Service сервис жизненного цикла бронирований
//
// Допустимые переходы статусов:
//
//	confirmed -> in_progress -> finished
//	confirmed -> cancelled (терминальный)
//	confirmed -> postponed
type Service struct {
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Доступно владельцу и назначенному официанту
func (s *Service) GetByID(ctx context.Context, id string, requesterID string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s for requester=%s", id, requesterID)

	reservation, err := s.getReservation(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if !reservation.IsOwnedBy(requesterID) && !reservation.IsAssignedTo(requesterID) {
		s.logger.Warn("GetByID: access denied for requester=%s to reservation id=%s", requesterID, id)
		return nil, ErrForbidden
	}

	return models.FromDomainReservation(reservation), nil
}

// GetUserReservations получает бронирования владельца
// Опционально фильтрует по статусу
func (s *Service) GetUserReservations(ctx context.Context, ownerID string, status *string) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for owner=%s, status=%v", ownerID, status)

	var domainStatus *domain.ReservationStatus
	if status != nil {
		converted, err := models.ToDomainStatus(*status)
		if err != nil {
			s.logger.Warn("GetUserReservations: invalid status=%s for owner=%s", *status, ownerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &converted
	}

	reservations, err := s.reservationRepo.GetByOwner(ctx, ownerID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: fetched %d reservations for owner=%s", len(reservations), ownerID)
	return models.FromDomainReservationList(reservations), nil
}

// GetLocationReservations получает бронирования локации с фильтрацией
// Используется staff-просмотром плана зала на день
func (s *Service) GetLocationReservations(ctx context.Context, req *models.GetLocationReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetLocationReservations: location=%d", req.LocationID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetLocationReservations: invalid filter for location=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByLocationWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetLocationReservations: repository error for location=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: GetLocationReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetLocationReservations: fetched %d reservations for location=%d", len(reservations), req.LocationID)
	return models.FromDomainReservationList(reservations), nil
}

// CancelByOwner отменяет бронирование от имени владельца
// Мягкая отмена: запись остаётся со статусом cancelled
// Допустима только для confirmed и только в течение 30 минут после создания
// Повторная отмена возвращает ErrInvalidState, а не тихий no-op
func (s *Service) CancelByOwner(ctx context.Context, id string, requesterID string) error {
	s.logger.Info("CancelByOwner: cancelling reservation id=%s by %s", id, requesterID)

	reservation, err := s.getReservation(ctx, id, "CancelByOwner")
	if err != nil {
		return err
	}

	if !reservation.IsOwnedBy(requesterID) {
		s.logger.Warn("CancelByOwner: requester %s is not the owner of id=%s", requesterID, id)
		return ErrForbidden
	}

	if !reservation.CanBeCancelledByOwner() {
		s.logger.Warn("CancelByOwner: reservation id=%s cannot be cancelled, status=%s", id, reservation.Status)
		return ErrInvalidState
	}

	if !validation.IsWithin30MinutesOfCreation(reservation.CreatedAt, s.timeProvider.Now()) {
		s.logger.Warn("CancelByOwner: cancellation window expired for id=%s", id)
		return ErrTooLate
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("CancelByOwner: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: CancelByOwner - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CancelByOwner: reservation id=%s cancelled", id)
	return nil
}

// CancelByStaff отменяет бронирование от имени официанта
// Жёсткая отмена: запись удаляется физически, без tombstone
// Это намеренно расходится с владельческой отменой (см. CancelByOwner)
// Доступна только официанту, назначенному на это бронирование
func (s *Service) CancelByStaff(ctx context.Context, id string, waiterID string) error {
	s.logger.Info("CancelByStaff: deleting reservation id=%s by waiter=%s", id, waiterID)

	reservation, err := s.getReservation(ctx, id, "CancelByStaff")
	if err != nil {
		return err
	}

	if !reservation.IsAssignedTo(waiterID) {
		s.logger.Warn("CancelByStaff: waiter %s is not assigned to reservation id=%s", waiterID, id)
		return ErrForbidden
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("CancelByStaff: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: CancelByStaff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CancelByStaff: reservation id=%s deleted by waiter=%s", id, waiterID)
	return nil
}

// Postpone переносит бронирование на новые дату и время
// Перезаписывает расписание и ставит статус postponed
// Ни владение, ни 30-минутное окно здесь не проверяются - такие
// ограничения, если нужны, накладывает вызывающая сторона
func (s *Service) Postpone(ctx context.Context, id string, date time.Time, timeFrom, timeTo types.TimeString) error {
	s.logger.Info("Postpone: reservation id=%s -> %s %s-%s", id, date.Format(domain.DateFormat), timeFrom, timeTo)

	if err := s.reservationRepo.UpdateSchedule(ctx, id, date, timeFrom, timeTo, domain.StatusPostponed); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Postpone: reservation id=%s not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Postpone: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Postpone - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Postpone: reservation id=%s postponed", id)
	return nil
}

// TransitionAsOwner переводит бронирование в новый статус от имени владельца
func (s *Service) TransitionAsOwner(ctx context.Context, id string, newStatus string, requesterID string) error {
	s.logger.Info("TransitionAsOwner: reservation id=%s -> %s by %s", id, newStatus, requesterID)

	status, err := models.ToDomainStatus(newStatus)
	if err != nil {
		s.logger.Warn("TransitionAsOwner: invalid status=%s for id=%s", newStatus, id)
		return ErrInvalidStatus
	}

	reservation, err := s.getReservation(ctx, id, "TransitionAsOwner")
	if err != nil {
		return err
	}

	if !reservation.IsOwnedBy(requesterID) {
		s.logger.Warn("TransitionAsOwner: requester %s is not the owner of id=%s", requesterID, id)
		return ErrForbidden
	}

	return s.applyTransition(ctx, reservation, status, "TransitionAsOwner")
}

// TransitionAsSystem переводит бронирование в новый статус от имени системы
//
// Отдельная точка входа для планировщика: владельческая проверка здесь
// не выполняется принципиально, а не обходится. ownerID попадает только
// в лог как аудиторское поле
func (s *Service) TransitionAsSystem(ctx context.Context, id string, newStatus domain.ReservationStatus) error {
	if !domain.IsValidStatus(newStatus) {
		return ErrInvalidStatus
	}

	reservation, err := s.getReservation(ctx, id, "TransitionAsSystem")
	if err != nil {
		return err
	}

	s.logger.Info("TransitionAsSystem: reservation id=%s (owner=%s) %s -> %s",
		id, reservation.OwnerID, reservation.Status, newStatus)

	return s.applyTransition(ctx, reservation, newStatus, "TransitionAsSystem")
}

// AttachFeedback привязывает отзыв к бронированию
// Сам отзыв живёт во внешнем сервисе; здесь хранится только связь
func (s *Service) AttachFeedback(ctx context.Context, id string, feedbackID string) error {
	s.logger.Info("AttachFeedback: reservation id=%s, feedback=%s", id, feedbackID)

	if feedbackID == "" {
		return fmt.Errorf("%w: feedbackId is required", ErrInvalidInput)
	}

	if err := s.reservationRepo.SetFeedbackID(ctx, id, feedbackID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("AttachFeedback: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: AttachFeedback - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Вспомогательные методы

// applyTransition записывает новый статус, если он отличается от текущего
// Совпадение - идемпотентный no-op: пересекающиеся проходы планировщика
// сходятся без координации
func (s *Service) applyTransition(ctx context.Context, reservation *domain.Reservation, newStatus domain.ReservationStatus, op string) error {
	// Отменённое бронирование терминально
	if reservation.IsCancelled() {
		s.logger.Warn("%s: reservation id=%s is cancelled, transition rejected", op, reservation.ID)
		return ErrInvalidState
	}

	if reservation.Status == newStatus {
		return nil
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservation.ID, newStatus); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for id=%s: %v", op, reservation.ID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: reservation id=%s status %s -> %s", op, reservation.ID, reservation.Status, newStatus)
	return nil
}

// getReservation достаёт бронирование, транслируя ошибку репозитория
func (s *Service) getReservation(ctx context.Context, id string, op string) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%s not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return reservation, nil
}
