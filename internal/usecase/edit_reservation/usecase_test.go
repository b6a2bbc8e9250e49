package edit_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablebook/reservation-service/internal/domain"
	reservationRepo "github.com/tablebook/reservation-service/internal/infra/storage/reservation"
	"github.com/tablebook/reservation-service/internal/integrations/tablecatalog"
	"github.com/tablebook/reservation-service/pkg/types"
)

type fakeReservationRepo struct {
	reservation *domain.Reservation
	getErr      error
	updateErr   error
	updated     *domain.Reservation
}

func (f *fakeReservationRepo) GetByID(_ context.Context, _ string) (*domain.Reservation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	out := *f.reservation
	return &out, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, reservation *domain.Reservation) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = reservation
	return nil
}

type fakeCatalogClient struct {
	tables []tablecatalog.Table
	err    error
}

func (f *fakeCatalogClient) GetTables(_ context.Context, _ int64) ([]tablecatalog.Table, error) {
	return f.tables, f.err
}

type fakeWaiterAssigner struct {
	waiterID string
	err      error
}

func (f *fakeWaiterAssigner) AssignLeastBusy(_ context.Context, _ int64) (string, error) {
	return f.waiterID, f.err
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

var testNow = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

func storedReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:         "2f9c0a1e-0000-0000-0000-000000000001",
		LocationID: 5,
		TableID:    1,
		Date:       time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		TimeFrom:   types.TimeString("14:00"),
		TimeTo:     types.TimeString("15:30"),
		GuestCount: 2,
		Status:     domain.StatusConfirmed,
		OwnerID:    "guest@example.com",
		WaiterID:   "waiter-a@example.com",
		CreatedAt:  testNow.Add(-10 * time.Minute),
	}
}

func editRequest() *Request {
	return &Request{
		ReservationID: "2f9c0a1e-0000-0000-0000-000000000001",
		RequesterID:   "guest@example.com",
		TableID:       2,
		Date:          time.Date(2025, 10, 21, 0, 0, 0, 0, time.UTC),
		TimeFrom:      types.TimeString("17:30"),
		TimeTo:        types.TimeString("19:00"),
		GuestCount:    4,
	}
}

func newTestUseCase(repo *fakeReservationRepo, catalog *fakeCatalogClient, assigner *fakeWaiterAssigner) *UseCase {
	uc := NewUseCase(repo, catalog, assigner, passthroughTxManager{}, time.UTC, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestEditReservation(t *testing.T) {
	defaultTables := []tablecatalog.Table{
		{ID: 1, LocationID: 5, Capacity: 4},
		{ID: 2, LocationID: 5, Capacity: 6},
	}

	t.Run("success replaces schedule and reassigns waiter", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: storedReservation()}
		uc := newTestUseCase(repo, &fakeCatalogClient{tables: defaultTables},
			&fakeWaiterAssigner{waiterID: "waiter-b@example.com"})

		resp, err := uc.Execute(context.Background(), editRequest())
		require.NoError(t, err)

		assert.Equal(t, int64(2), resp.TableID)
		assert.Equal(t, types.TimeString("17:30"), resp.TimeFrom)
		assert.Equal(t, "waiter-b@example.com", resp.WaiterID)
		// Неизменяемые поля сохраняются
		assert.Equal(t, "2f9c0a1e-0000-0000-0000-000000000001", resp.ID)
		assert.Equal(t, "guest@example.com", resp.OwnerID)
		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
		require.NotNil(t, repo.updated)
	})

	t.Run("29 minutes after creation is still allowed", func(t *testing.T) {
		stored := storedReservation()
		stored.CreatedAt = testNow.Add(-29 * time.Minute)
		repo := &fakeReservationRepo{reservation: stored}
		uc := newTestUseCase(repo, &fakeCatalogClient{tables: defaultTables},
			&fakeWaiterAssigner{waiterID: "waiter-b@example.com"})

		_, err := uc.Execute(context.Background(), editRequest())
		assert.NoError(t, err)
	})

	t.Run("31 minutes after creation is too late", func(t *testing.T) {
		stored := storedReservation()
		stored.CreatedAt = testNow.Add(-31 * time.Minute)
		repo := &fakeReservationRepo{reservation: stored}
		uc := newTestUseCase(repo, &fakeCatalogClient{tables: defaultTables},
			&fakeWaiterAssigner{waiterID: "waiter-b@example.com"})

		_, err := uc.Execute(context.Background(), editRequest())
		assert.ErrorIs(t, err, ErrTooLate)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeReservationRepo{getErr: reservationRepo.ErrReservationNotFound}
		uc := newTestUseCase(repo, &fakeCatalogClient{tables: defaultTables}, &fakeWaiterAssigner{})

		_, err := uc.Execute(context.Background(), editRequest())
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("only the owner may edit", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: storedReservation()}
		uc := newTestUseCase(repo, &fakeCatalogClient{tables: defaultTables}, &fakeWaiterAssigner{})

		req := editRequest()
		req.RequesterID = "someone-else@example.com"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("cancelled reservation cannot be edited", func(t *testing.T) {
		stored := storedReservation()
		stored.Status = domain.StatusCancelled
		repo := &fakeReservationRepo{reservation: stored}
		uc := newTestUseCase(repo, &fakeCatalogClient{tables: defaultTables}, &fakeWaiterAssigner{})

		_, err := uc.Execute(context.Background(), editRequest())
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("new table must exist at location", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: storedReservation()}
		uc := newTestUseCase(repo, &fakeCatalogClient{tables: defaultTables}, &fakeWaiterAssigner{})

		req := editRequest()
		req.TableID = 99

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrTableNotFound)
	})

	t.Run("capacity of the new table is enforced", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: storedReservation()}
		uc := newTestUseCase(repo, &fakeCatalogClient{tables: defaultTables}, &fakeWaiterAssigner{})

		req := editRequest()
		req.GuestCount = 7 // стол 2 вмещает 6

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrCapacityExceeded)
	})

	t.Run("new slot already taken", func(t *testing.T) {
		repo := &fakeReservationRepo{
			reservation: storedReservation(),
			updateErr:   reservationRepo.ErrSlotTaken,
		}
		uc := newTestUseCase(repo, &fakeCatalogClient{tables: defaultTables},
			&fakeWaiterAssigner{waiterID: "waiter-b@example.com"})

		_, err := uc.Execute(context.Background(), editRequest())
		assert.ErrorIs(t, err, ErrSlotTaken)
	})
}
