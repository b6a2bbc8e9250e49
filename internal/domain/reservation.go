package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/tablebook/reservation-service/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusInProgress ReservationStatus = "in_progress"
	StatusFinished   ReservationStatus = "finished"
	StatusCancelled  ReservationStatus = "cancelled"
	StatusPostponed  ReservationStatus = "postponed"
)

// Reservation represents a table reservation in the system
type Reservation struct {
	ID         string // UUID, присваивается при создании
	LocationID int64
	TableID    int64
	Date       time.Time
	TimeFrom   types.TimeString
	TimeTo     types.TimeString
	GuestCount int
	Status     ReservationStatus

	// OwnerID email клиента либо "anonymous:<имя>" для гостей, записанных официантом
	OwnerID  string
	WaiterID string // email назначенного официанта

	FeedbackID *string // ID отзыва, если гость его оставил

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// BlocksSlot returns true if the reservation keeps its slot occupied
// for availability purposes
func (r *Reservation) BlocksSlot() bool {
	return r.Status == StatusConfirmed || r.Status == StatusInProgress
}

// CanBeCancelledByOwner returns true if the owner may still cancel the reservation
func (r *Reservation) CanBeCancelledByOwner() bool {
	return r.Status == StatusConfirmed
}

// IsOwnedBy returns true if the reservation belongs to the given owner
func (r *Reservation) IsOwnedBy(ownerID string) bool {
	return r.OwnerID == ownerID
}

// IsAssignedTo returns true if the reservation is served by the given waiter
func (r *Reservation) IsAssignedTo(waiterID string) bool {
	return r.WaiterID == waiterID
}

// Interval возвращает интервал посадки [date+timeFrom, date+timeTo) в таймзоне loc
func (r *Reservation) Interval(loc *time.Location) (time.Time, time.Time, error) {
	from, err := time.Parse(types.TimeFormat, r.TimeFrom.String())
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("reservation %s: invalid time_from %q: %v", r.ID, r.TimeFrom, err)
	}
	to, err := time.Parse(types.TimeFormat, r.TimeTo.String())
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("reservation %s: invalid time_to %q: %v", r.ID, r.TimeTo, err)
	}

	y, m, d := r.Date.Date()
	start := time.Date(y, m, d, from.Hour(), from.Minute(), 0, 0, loc)
	end := time.Date(y, m, d, to.Hour(), to.Minute(), 0, 0, loc)
	return start, end, nil
}

// AnonymousOwnerPrefix префикс ownerID для гостей без аккаунта
const AnonymousOwnerPrefix = "anonymous:"

// AnonymousOwner строит ownerID для гостя, записанного официантом по имени
func AnonymousOwner(name string) string {
	return AnonymousOwnerPrefix + name
}

// IsAnonymousOwner возвращает true для ownerID гостя без аккаунта
func IsAnonymousOwner(ownerID string) bool {
	return strings.HasPrefix(ownerID, AnonymousOwnerPrefix)
}

// LocationReservationsFilter фильтр для выборки бронирований локации
type LocationReservationsFilter struct {
	LocationID      int64              // Обязательный параметр
	TableID         *int64             // Фильтр по столу (опционально)
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые бронирования
}
