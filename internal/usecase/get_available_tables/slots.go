package get_available_tables

import (
	"time"

	"github.com/tablebook/reservation-service/internal/domain"
	"github.com/tablebook/reservation-service/pkg/types"
)

// candidateSlots возвращает слоты сетки, доступные для предложения гостю
// Слоты не генерируются - сетка фиксированная, фильтрация сохраняет её порядок:
//
// 1. Отбрасываются все слоты не позже earliestTime - гостю предлагаются
//    только строго более поздние посадки
// 2. Если запрошенная дата - сегодня (в таймзоне loc), дополнительно
//    отбрасываются слоты строго раньше текущего времени
func candidateSlots(date time.Time, earliestTime types.TimeString, now time.Time, loc *time.Location) []types.TimeString {
	localNow := now.In(loc)

	slots := make([]types.TimeString, 0, len(domain.SlotGrid))
	for _, slot := range domain.SlotGrid {
		if !earliestTime.IsZero() && !slot.IsAfter(earliestTime) {
			continue
		}
		if isSameDay(date, localNow) && slot.IsBefore(types.NewTimeString(localNow)) {
			continue
		}
		slots = append(slots, slot)
	}

	return slots
}

// removeBookedSlots убирает из candidates слоты, совпадающие с time_from
// занимающих стол бронирований. Все брони лежат на одной сетке, поэтому
// конфликт сводится к точному равенству слота
func removeBookedSlots(candidates []types.TimeString, tableID int64, reservations []*domain.Reservation) []types.TimeString {
	free := make([]types.TimeString, 0, len(candidates))

	for _, slot := range candidates {
		booked := false
		for _, r := range reservations {
			if r.TableID != tableID {
				continue
			}
			// Отменённые и прочие неблокирующие статусы слот не занимают
			if !r.BlocksSlot() {
				continue
			}
			if r.TimeFrom == slot {
				booked = true
				break
			}
		}
		if !booked {
			free = append(free, slot)
		}
	}

	return free
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
