package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablebook/reservation-service/internal/domain"
	reservationRepo "github.com/tablebook/reservation-service/internal/infra/storage/reservation"
	"github.com/tablebook/reservation-service/pkg/types"
)

type statusUpdate struct {
	id     string
	status domain.ReservationStatus
}

type fakeReservationRepo struct {
	reservation *domain.Reservation
	getErr      error

	statusUpdates []statusUpdate
	updateErr     error

	deleted   []string
	deleteErr error

	scheduleID     string
	scheduleStatus domain.ReservationStatus
	scheduleErr    error

	feedbackID  string
	feedbackErr error

	byOwner []*domain.Reservation
	byLoc   []*domain.Reservation
	listErr error
}

func (f *fakeReservationRepo) GetByID(_ context.Context, _ string) (*domain.Reservation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	out := *f.reservation
	return &out, nil
}

func (f *fakeReservationRepo) GetByOwner(_ context.Context, _ string, _ *domain.ReservationStatus) ([]*domain.Reservation, error) {
	return f.byOwner, f.listErr
}

func (f *fakeReservationRepo) GetByLocationWithFilter(_ context.Context, _ domain.LocationReservationsFilter) ([]*domain.Reservation, error) {
	return f.byLoc, f.listErr
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id string, status domain.ReservationStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.statusUpdates = append(f.statusUpdates, statusUpdate{id: id, status: status})
	return nil
}

func (f *fakeReservationRepo) UpdateSchedule(_ context.Context, id string, _ time.Time, _, _ types.TimeString, status domain.ReservationStatus) error {
	if f.scheduleErr != nil {
		return f.scheduleErr
	}
	f.scheduleID = id
	f.scheduleStatus = status
	return nil
}

func (f *fakeReservationRepo) SetFeedbackID(_ context.Context, _ string, feedbackID string) error {
	if f.feedbackErr != nil {
		return f.feedbackErr
	}
	f.feedbackID = feedbackID
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
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

const testID = "2f9c0a1e-0000-0000-0000-000000000001"

func storedReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:         testID,
		LocationID: 5,
		TableID:    1,
		Date:       time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		TimeFrom:   types.TimeString("14:00"),
		TimeTo:     types.TimeString("15:30"),
		GuestCount: 2,
		Status:     domain.StatusConfirmed,
		OwnerID:    "guest@example.com",
		WaiterID:   "waiter@example.com",
		CreatedAt:  testNow.Add(-10 * time.Minute),
	}
}

func newTestService(repo *fakeReservationRepo) *Service {
	s := NewService(repo, noopLogger{})
	s.timeProvider = &fixedTimeProvider{now: testNow}
	return s
}

func TestGetByID(t *testing.T) {
	t.Run("owner can read", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: storedReservation()}
		resp, err := newTestService(repo).GetByID(context.Background(), testID, "guest@example.com")
		require.NoError(t, err)
		assert.Equal(t, testID, resp.ID)
	})

	t.Run("assigned waiter can read", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: storedReservation()}
		_, err := newTestService(repo).GetByID(context.Background(), testID, "waiter@example.com")
		assert.NoError(t, err)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: storedReservation()}
		_, err := newTestService(repo).GetByID(context.Background(), testID, "stranger@example.com")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeReservationRepo{getErr: reservationRepo.ErrReservationNotFound}
		_, err := newTestService(repo).GetByID(context.Background(), testID, "guest@example.com")
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestCancelByOwner(t *testing.T) {
	t.Run("success within window", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: storedReservation()}
		err := newTestService(repo).CancelByOwner(context.Background(), testID, "guest@example.com")
		require.NoError(t, err)
		require.Len(t, repo.statusUpdates, 1)
		assert.Equal(t, domain.StatusCancelled, repo.statusUpdates[0].status)
	})

	t.Run("not the owner", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: storedReservation()}
		err := newTestService(repo).CancelByOwner(context.Background(), testID, "stranger@example.com")
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Empty(t, repo.statusUpdates)
	})

	t.Run("window expired", func(t *testing.T) {
		stored := storedReservation()
		stored.CreatedAt = testNow.Add(-31 * time.Minute)
		repo := &fakeReservationRepo{reservation: stored}
		err := newTestService(repo).CancelByOwner(context.Background(), testID, "guest@example.com")
		assert.ErrorIs(t, err, ErrTooLate)
	})

	t.Run("second cancel fails instead of silent no-op", func(t *testing.T) {
		stored := storedReservation()
		stored.Status = domain.StatusCancelled
		repo := &fakeReservationRepo{reservation: stored}
		err := newTestService(repo).CancelByOwner(context.Background(), testID, "guest@example.com")
		assert.ErrorIs(t, err, ErrInvalidState)
		assert.Empty(t, repo.statusUpdates)
	})

	t.Run("in_progress cannot be cancelled by owner", func(t *testing.T) {
		stored := storedReservation()
		stored.Status = domain.StatusInProgress
		repo := &fakeReservationRepo{reservation: stored}
		err := newTestService(repo).CancelByOwner(context.Background(), testID, "guest@example.com")
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestCancelByStaff(t *testing.T) {
	t.Run("assigned waiter hard-deletes", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: storedReservation()}
		err := newTestService(repo).CancelByStaff(context.Background(), testID, "waiter@example.com")
		require.NoError(t, err)
		assert.Equal(t, []string{testID}, repo.deleted)
	})

	t.Run("unassigned waiter is rejected", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: storedReservation()}
		err := newTestService(repo).CancelByStaff(context.Background(), testID, "other-waiter@example.com")
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Empty(t, repo.deleted)
	})

	t.Run("no window restriction for staff", func(t *testing.T) {
		stored := storedReservation()
		stored.CreatedAt = testNow.Add(-48 * time.Hour)
		repo := &fakeReservationRepo{reservation: stored}
		err := newTestService(repo).CancelByStaff(context.Background(), testID, "waiter@example.com")
		assert.NoError(t, err)
	})
}

func TestPostpone(t *testing.T) {
	t.Run("overwrites schedule and sets postponed", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: storedReservation()}
		err := newTestService(repo).Postpone(context.Background(), testID,
			time.Date(2025, 10, 22, 0, 0, 0, 0, time.UTC), "17:30", "19:00")
		require.NoError(t, err)
		assert.Equal(t, testID, repo.scheduleID)
		assert.Equal(t, domain.StatusPostponed, repo.scheduleStatus)
	})

	t.Run("not found is the only guard", func(t *testing.T) {
		repo := &fakeReservationRepo{scheduleErr: reservationRepo.ErrReservationNotFound}
		err := newTestService(repo).Postpone(context.Background(), testID,
			time.Date(2025, 10, 22, 0, 0, 0, 0, time.UTC), "17:30", "19:00")
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestTransitionAsOwner(t *testing.T) {
	t.Run("owner transitions to valid status", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: storedReservation()}
		err := newTestService(repo).TransitionAsOwner(context.Background(), testID, "in_progress", "guest@example.com")
		require.NoError(t, err)
		require.Len(t, repo.statusUpdates, 1)
		assert.Equal(t, domain.StatusInProgress, repo.statusUpdates[0].status)
	})

	t.Run("unknown status", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: storedReservation()}
		err := newTestService(repo).TransitionAsOwner(context.Background(), testID, "eaten", "guest@example.com")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("not the owner", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: storedReservation()}
		err := newTestService(repo).TransitionAsOwner(context.Background(), testID, "in_progress", "stranger@example.com")
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestTransitionAsSystem(t *testing.T) {
	t.Run("no ownership check", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: storedReservation()}
		err := newTestService(repo).TransitionAsSystem(context.Background(), testID, domain.StatusInProgress)
		require.NoError(t, err)
		require.Len(t, repo.statusUpdates, 1)
	})

	t.Run("same status is an idempotent no-op", func(t *testing.T) {
		stored := storedReservation()
		stored.Status = domain.StatusInProgress
		repo := &fakeReservationRepo{reservation: stored}
		err := newTestService(repo).TransitionAsSystem(context.Background(), testID, domain.StatusInProgress)
		require.NoError(t, err)
		assert.Empty(t, repo.statusUpdates)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		stored := storedReservation()
		stored.Status = domain.StatusCancelled
		repo := &fakeReservationRepo{reservation: stored}
		err := newTestService(repo).TransitionAsSystem(context.Background(), testID, domain.StatusFinished)
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestAttachFeedback(t *testing.T) {
	t.Run("stores the link", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: storedReservation()}
		err := newTestService(repo).AttachFeedback(context.Background(), testID, "fb-001")
		require.NoError(t, err)
		assert.Equal(t, "fb-001", repo.feedbackID)
	})

	t.Run("empty feedback id", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: storedReservation()}
		err := newTestService(repo).AttachFeedback(context.Background(), testID, "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeReservationRepo{feedbackErr: reservationRepo.ErrReservationNotFound}
		err := newTestService(repo).AttachFeedback(context.Background(), testID, "fb-001")
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestGetUserReservations(t *testing.T) {
	t.Run("invalid status filter", func(t *testing.T) {
		repo := &fakeReservationRepo{}
		bad := "eaten"
		_, err := newTestService(repo).GetUserReservations(context.Background(), "guest@example.com", &bad)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("returns owner history", func(t *testing.T) {
		repo := &fakeReservationRepo{byOwner: []*domain.Reservation{storedReservation()}}
		resp, err := newTestService(repo).GetUserReservations(context.Background(), "guest@example.com", nil)
		require.NoError(t, err)
		assert.Len(t, resp.Reservations, 1)
	})
}
