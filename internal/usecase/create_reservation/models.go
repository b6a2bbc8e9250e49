package create_reservation

import (
	"time"

	"github.com/tablebook/reservation-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	LocationID int64            // ID локации
	TableID    int64            // ID стола
	Date       time.Time        // Дата посадки (без времени)
	TimeFrom   types.TimeString // Время начала посадки
	TimeTo     types.TimeString // Время окончания посадки
	GuestCount int              // Количество гостей

	// OwnerID email клиента либо domain.AnonymousOwner(<имя>) для гостей,
	// записанных официантом. Заполняется вызывающей стороной из identity
	OwnerID string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         string           // UUID созданного бронирования
	LocationID int64            // ID локации
	TableID    int64            // ID стола
	Date       time.Time        // Дата посадки
	TimeFrom   types.TimeString // Время начала
	TimeTo     types.TimeString // Время окончания
	GuestCount int              // Количество гостей
	Status     string           // Статус бронирования
	OwnerID    string           // Владелец
	WaiterID   string           // Назначенный официант

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
