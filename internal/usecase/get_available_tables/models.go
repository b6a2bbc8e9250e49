package get_available_tables

import (
	"time"

	"github.com/tablebook/reservation-service/internal/domain"
	"github.com/tablebook/reservation-service/pkg/types"
)

// Request модель запроса на поиск свободных столов
type Request struct {
	LocationID   int64            // ID локации
	Date         time.Time        // Дата посадки (без времени)
	EarliestTime types.TimeString // Желаемое время: предлагаются только строго более поздние слоты
	GuestCount   int              // Количество гостей
}

// Response модель ответа со свободными столами и их слотами
type Response struct {
	LocationID int64
	Date       time.Time
	Tables     []domain.TableAvailability // Порядок столов соответствует каталогу
}
