package edit_reservation

import (
	"time"

	"github.com/tablebook/reservation-service/pkg/types"
)

// Request модель запроса на изменение бронирования
type Request struct {
	ReservationID string // UUID изменяемого бронирования

	// RequesterID кто запрашивает изменение; должен совпадать с владельцем
	RequesterID string

	// Новые значения изменяемых полей
	TableID    int64
	Date       time.Time
	TimeFrom   types.TimeString
	TimeTo     types.TimeString
	GuestCount int
}

// Response модель ответа с изменённым бронированием
type Response struct {
	ID         string
	LocationID int64
	TableID    int64
	Date       time.Time
	TimeFrom   types.TimeString
	TimeTo     types.TimeString
	GuestCount int
	Status     string
	OwnerID    string
	WaiterID   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
