package domain

// Business rule constants
const (
	// EditWindowMinutes окно после создания брони, в течение которого
	// владелец может её изменить или отменить
	EditWindowMinutes = 30

	// SeatingDurationMinutes предполагаемая длительность посадки,
	// используется планировщиком статусов для расчёта времён срабатывания
	SeatingDurationMinutes = 90
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultTimezone таймзона, в которой определяется "сегодня"
// для фильтрации слотов и переходов статусов
const DefaultTimezone = "Europe/Moscow"

// SlotBlockingStatuses статусы, при которых бронирование занимает слот
// Используется при подсчёте доступных слотов
var SlotBlockingStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusInProgress,
}

// ValidStatuses все допустимые статусы бронирования
var ValidStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusInProgress,
	StatusFinished,
	StatusCancelled,
	StatusPostponed,
}

// IsValidStatus проверяет, что строка является допустимым статусом
func IsValidStatus(s ReservationStatus) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}
