package get_available_tables

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tablebook/reservation-service/internal/domain"
	"github.com/tablebook/reservation-service/pkg/types"
)

func TestCandidateSlots(t *testing.T) {
	loc := time.UTC
	futureDate := time.Date(2025, 10, 20, 0, 0, 0, 0, loc)
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, loc)

	t.Run("earliest time drops earlier and equal slots", func(t *testing.T) {
		slots := candidateSlots(futureDate, types.TimeString("14:00"), now, loc)
		assert.Equal(t, []types.TimeString{"15:45", "17:30", "19:15", "21:00"}, slots)
	})

	t.Run("zero earliest time keeps whole grid for future date", func(t *testing.T) {
		slots := candidateSlots(futureDate, "", now, loc)
		assert.Equal(t, domain.SlotGrid, slots)
	})

	t.Run("today drops slots before current time", func(t *testing.T) {
		today := time.Date(2025, 10, 15, 0, 0, 0, 0, loc)
		slots := candidateSlots(today, "", now, loc)
		// 10:30 уже прошёл, 12:15 и позже ещё впереди
		assert.Equal(t, []types.TimeString{"12:15", "14:00", "15:45", "17:30", "19:15", "21:00"}, slots)
	})

	t.Run("today combines both filters", func(t *testing.T) {
		today := time.Date(2025, 10, 15, 0, 0, 0, 0, loc)
		slots := candidateSlots(today, types.TimeString("14:00"), now, loc)
		assert.Equal(t, []types.TimeString{"15:45", "17:30", "19:15", "21:00"}, slots)
	})

	t.Run("earliest after last slot yields empty", func(t *testing.T) {
		slots := candidateSlots(futureDate, types.TimeString("21:00"), now, loc)
		assert.Empty(t, slots)
	})
}

func TestRemoveBookedSlots(t *testing.T) {
	candidates := []types.TimeString{"10:30", "12:15", "14:00"}

	t.Run("confirmed reservation blocks its exact slot", func(t *testing.T) {
		reservations := []*domain.Reservation{
			{TableID: 1, TimeFrom: "10:30", Status: domain.StatusConfirmed},
		}
		free := removeBookedSlots(candidates, 1, reservations)
		assert.Equal(t, []types.TimeString{"12:15", "14:00"}, free)
	})

	t.Run("in_progress reservation blocks its slot", func(t *testing.T) {
		reservations := []*domain.Reservation{
			{TableID: 1, TimeFrom: "12:15", Status: domain.StatusInProgress},
		}
		free := removeBookedSlots(candidates, 1, reservations)
		assert.Equal(t, []types.TimeString{"10:30", "14:00"}, free)
	})

	t.Run("cancelled and finished do not block", func(t *testing.T) {
		reservations := []*domain.Reservation{
			{TableID: 1, TimeFrom: "10:30", Status: domain.StatusCancelled},
			{TableID: 1, TimeFrom: "12:15", Status: domain.StatusFinished},
			{TableID: 1, TimeFrom: "14:00", Status: domain.StatusPostponed},
		}
		free := removeBookedSlots(candidates, 1, reservations)
		assert.Equal(t, candidates, free)
	})

	t.Run("other tables do not affect this table", func(t *testing.T) {
		reservations := []*domain.Reservation{
			{TableID: 2, TimeFrom: "10:30", Status: domain.StatusConfirmed},
		}
		free := removeBookedSlots(candidates, 1, reservations)
		assert.Equal(t, candidates, free)
	})
}
