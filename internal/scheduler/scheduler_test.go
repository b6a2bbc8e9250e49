package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablebook/reservation-service/internal/domain"
	"github.com/tablebook/reservation-service/pkg/types"
)

type fakeSource struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeSource) GetNonCancelled(_ context.Context) ([]*domain.Reservation, error) {
	return f.reservations, f.err
}

type transition struct {
	id     string
	status domain.ReservationStatus
}

type fakeTransitioner struct {
	transitions []transition
	failFor     map[string]error
}

func (f *fakeTransitioner) TransitionAsSystem(_ context.Context, id string, newStatus domain.ReservationStatus) error {
	if err, ok := f.failFor[id]; ok {
		return err
	}
	f.transitions = append(f.transitions, transition{id: id, status: newStatus})
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func reservationAt(id string, from, to types.TimeString, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:       id,
		Date:     time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		TimeFrom: from,
		TimeTo:   to,
		Status:   status,
	}
}

func TestTick(t *testing.T) {
	t.Run("inside interval moves to in_progress", func(t *testing.T) {
		source := &fakeSource{reservations: []*domain.Reservation{
			reservationAt("r1", "12:00", "13:30", domain.StatusConfirmed),
		}}
		sink := &fakeTransitioner{}
		s := New(source, sink, time.UTC, noopLogger{})

		s.Tick(context.Background(), time.Date(2025, 10, 15, 12, 30, 0, 0, time.UTC))

		require.Len(t, sink.transitions, 1)
		assert.Equal(t, domain.StatusInProgress, sink.transitions[0].status)
	})

	t.Run("past interval moves to finished", func(t *testing.T) {
		source := &fakeSource{reservations: []*domain.Reservation{
			reservationAt("r1", "12:00", "13:30", domain.StatusInProgress),
		}}
		sink := &fakeTransitioner{}
		s := New(source, sink, time.UTC, noopLogger{})

		s.Tick(context.Background(), time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC))

		require.Len(t, sink.transitions, 1)
		assert.Equal(t, domain.StatusFinished, sink.transitions[0].status)
	})

	t.Run("before interval leaves reservation untouched", func(t *testing.T) {
		source := &fakeSource{reservations: []*domain.Reservation{
			reservationAt("r1", "12:00", "13:30", domain.StatusConfirmed),
		}}
		sink := &fakeTransitioner{}
		s := New(source, sink, time.UTC, noopLogger{})

		s.Tick(context.Background(), time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC))

		assert.Empty(t, sink.transitions)
	})

	t.Run("already correct status is not rewritten", func(t *testing.T) {
		source := &fakeSource{reservations: []*domain.Reservation{
			reservationAt("r1", "12:00", "13:30", domain.StatusInProgress),
		}}
		sink := &fakeTransitioner{}
		s := New(source, sink, time.UTC, noopLogger{})

		s.Tick(context.Background(), time.Date(2025, 10, 15, 12, 45, 0, 0, time.UTC))

		assert.Empty(t, sink.transitions)
	})

	t.Run("failure on one record does not stop the pass", func(t *testing.T) {
		source := &fakeSource{reservations: []*domain.Reservation{
			reservationAt("r1", "10:30", "12:00", domain.StatusConfirmed),
			reservationAt("r2", "12:15", "13:45", domain.StatusConfirmed),
		}}
		sink := &fakeTransitioner{failFor: map[string]error{"r1": assert.AnError}}
		s := New(source, sink, time.UTC, noopLogger{})

		s.Tick(context.Background(), time.Date(2025, 10, 15, 12, 30, 0, 0, time.UTC))

		require.Len(t, sink.transitions, 1)
		assert.Equal(t, "r2", sink.transitions[0].id)
		assert.Equal(t, domain.StatusInProgress, sink.transitions[0].status)
	})

	t.Run("malformed time is skipped", func(t *testing.T) {
		source := &fakeSource{reservations: []*domain.Reservation{
			reservationAt("r1", "bogus", "13:30", domain.StatusConfirmed),
		}}
		sink := &fakeTransitioner{}
		s := New(source, sink, time.UTC, noopLogger{})

		s.Tick(context.Background(), time.Date(2025, 10, 15, 12, 30, 0, 0, time.UTC))

		assert.Empty(t, sink.transitions)
	})
}

func TestBuildTriggers(t *testing.T) {
	triggers := buildTriggers()

	// Каждый слот сетки и конец его посадки присутствуют
	for _, slot := range domain.SlotGrid {
		assert.Contains(t, triggers, slot)
		end, err := slot.AddMinutes(domain.SeatingDurationMinutes)
		require.NoError(t, err)
		assert.Contains(t, triggers, end)
	}

	// Список строго возрастает
	for i := 1; i < len(triggers); i++ {
		assert.True(t, triggers[i-1].IsBefore(triggers[i]))
	}
}

func TestNextTrigger(t *testing.T) {
	s := New(&fakeSource{}, &fakeTransitioner{}, time.UTC, noopLogger{})

	t.Run("between triggers picks the next one", func(t *testing.T) {
		now := time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC)
		next := s.nextTrigger(now)
		// После 10:30 следующее срабатывание - 12:00 (конец посадки 10:30)
		assert.Equal(t, time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC), next)
	})

	t.Run("exactly on a trigger picks the following one", func(t *testing.T) {
		now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
		next := s.nextTrigger(now)
		assert.Equal(t, time.Date(2025, 10, 15, 12, 15, 0, 0, time.UTC), next)
	})

	t.Run("after the last trigger rolls to tomorrow", func(t *testing.T) {
		now := time.Date(2025, 10, 15, 23, 0, 0, 0, time.UTC)
		next := s.nextTrigger(now)
		assert.Equal(t, time.Date(2025, 10, 16, 10, 30, 0, 0, time.UTC), next)
	})
}
