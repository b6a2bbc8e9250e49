package get_available_tables

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablebook/reservation-service/internal/domain"
	"github.com/tablebook/reservation-service/internal/integrations/tablecatalog"
	"github.com/tablebook/reservation-service/pkg/types"
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeReservationRepo) GetByLocationWithFilter(_ context.Context, _ domain.LocationReservationsFilter) ([]*domain.Reservation, error) {
	return f.reservations, f.err
}

type fakeCatalogClient struct {
	tables []tablecatalog.Table
	err    error
}

func (f *fakeCatalogClient) GetTables(_ context.Context, _ int64) ([]tablecatalog.Table, error) {
	return f.tables, f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeReservationRepo, catalog *fakeCatalogClient, now time.Time) *UseCase {
	uc := NewUseCase(repo, catalog, time.UTC, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestGetAvailableTables(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	futureDate := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)

	t.Run("capacity filter excludes small tables", func(t *testing.T) {
		catalog := &fakeCatalogClient{tables: []tablecatalog.Table{
			{ID: 1, LocationID: 5, Capacity: 2},
			{ID: 2, LocationID: 5, Capacity: 6},
		}}
		uc := newTestUseCase(&fakeReservationRepo{}, catalog, now)

		resp, err := uc.Execute(context.Background(), &Request{
			LocationID: 5,
			Date:       futureDate,
			GuestCount: 4,
		})
		require.NoError(t, err)
		require.Len(t, resp.Tables, 1)
		assert.Equal(t, int64(2), resp.Tables[0].TableID)
		assert.Equal(t, domain.SlotGrid, resp.Tables[0].Slots)
	})

	t.Run("booked slot removed from matching table only", func(t *testing.T) {
		catalog := &fakeCatalogClient{tables: []tablecatalog.Table{
			{ID: 1, LocationID: 5, Capacity: 4},
			{ID: 2, LocationID: 5, Capacity: 4},
		}}
		repo := &fakeReservationRepo{reservations: []*domain.Reservation{
			{TableID: 1, TimeFrom: "10:30", Status: domain.StatusConfirmed},
		}}
		uc := newTestUseCase(repo, catalog, now)

		resp, err := uc.Execute(context.Background(), &Request{
			LocationID: 5,
			Date:       futureDate,
			GuestCount: 2,
		})
		require.NoError(t, err)
		require.Len(t, resp.Tables, 2)
		assert.NotContains(t, resp.Tables[0].Slots, types.TimeString("10:30"))
		assert.Contains(t, resp.Tables[1].Slots, types.TimeString("10:30"))
	})

	t.Run("fully booked table omitted from response", func(t *testing.T) {
		catalog := &fakeCatalogClient{tables: []tablecatalog.Table{
			{ID: 1, LocationID: 5, Capacity: 4},
		}}
		var reservations []*domain.Reservation
		for _, slot := range domain.SlotGrid {
			reservations = append(reservations, &domain.Reservation{
				TableID: 1, TimeFrom: slot, Status: domain.StatusConfirmed,
			})
		}
		uc := newTestUseCase(&fakeReservationRepo{reservations: reservations}, catalog, now)

		resp, err := uc.Execute(context.Background(), &Request{
			LocationID: 5,
			Date:       futureDate,
			GuestCount: 2,
		})
		require.NoError(t, err)
		assert.Empty(t, resp.Tables)
	})

	t.Run("no candidate slots skips reservation lookup", func(t *testing.T) {
		catalog := &fakeCatalogClient{tables: []tablecatalog.Table{
			{ID: 1, LocationID: 5, Capacity: 4},
		}}
		uc := newTestUseCase(&fakeReservationRepo{err: assert.AnError}, catalog, now)

		resp, err := uc.Execute(context.Background(), &Request{
			LocationID:   5,
			Date:         futureDate,
			EarliestTime: types.TimeString("21:00"),
			GuestCount:   2,
		})
		require.NoError(t, err)
		assert.Empty(t, resp.Tables)
	})

	t.Run("unknown location", func(t *testing.T) {
		catalog := &fakeCatalogClient{err: tablecatalog.ErrLocationNotFound}
		uc := newTestUseCase(&fakeReservationRepo{}, catalog, now)

		_, err := uc.Execute(context.Background(), &Request{
			LocationID: 99,
			Date:       futureDate,
			GuestCount: 2,
		})
		assert.ErrorIs(t, err, ErrLocationNotFound)
	})
}
