package waiters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablebook/reservation-service/internal/domain"
)

type fakeWaiterRepo struct {
	waiters     []*domain.Waiter
	listErr     error
	incremented []int64
	incErr      error
}

func (f *fakeWaiterRepo) ListByLocation(_ context.Context, _ int64) ([]*domain.Waiter, error) {
	return f.waiters, f.listErr
}

func (f *fakeWaiterRepo) IncrementAssigned(_ context.Context, waiterID int64) error {
	if f.incErr != nil {
		return f.incErr
	}
	f.incremented = append(f.incremented, waiterID)
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeWaiterRepo) *Service {
	return NewService(repo, passthroughTxManager{}, noopLogger{})
}

func TestAssignLeastBusy(t *testing.T) {
	t.Run("picks minimum lifetime count", func(t *testing.T) {
		repo := &fakeWaiterRepo{waiters: []*domain.Waiter{
			{ID: 1, Email: "a@example.com", LifetimeAssignedCount: 3},
			{ID: 2, Email: "b@example.com", LifetimeAssignedCount: 1},
			{ID: 3, Email: "c@example.com", LifetimeAssignedCount: 2},
		}}

		email, err := newTestService(repo).AssignLeastBusy(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, "b@example.com", email)
		assert.Equal(t, []int64{2}, repo.incremented)
	})

	t.Run("tie resolved by scan order", func(t *testing.T) {
		repo := &fakeWaiterRepo{waiters: []*domain.Waiter{
			{ID: 1, Email: "a@example.com", LifetimeAssignedCount: 3},
			{ID: 2, Email: "b@example.com", LifetimeAssignedCount: 1},
			{ID: 3, Email: "c@example.com", LifetimeAssignedCount: 1},
		}}

		email, err := newTestService(repo).AssignLeastBusy(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, "b@example.com", email)
	})

	t.Run("all zero counts picks the first", func(t *testing.T) {
		repo := &fakeWaiterRepo{waiters: []*domain.Waiter{
			{ID: 1, Email: "a@example.com"},
			{ID: 2, Email: "b@example.com"},
		}}

		email, err := newTestService(repo).AssignLeastBusy(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, "a@example.com", email)
		assert.Equal(t, []int64{1}, repo.incremented)
	})

	t.Run("no waiters at location", func(t *testing.T) {
		repo := &fakeWaiterRepo{}

		_, err := newTestService(repo).AssignLeastBusy(context.Background(), 5)
		assert.ErrorIs(t, err, ErrNoWaiters)
		assert.Empty(t, repo.incremented)
	})

	t.Run("increment failure surfaces as internal", func(t *testing.T) {
		repo := &fakeWaiterRepo{
			waiters: []*domain.Waiter{{ID: 1, Email: "a@example.com"}},
			incErr:  assert.AnError,
		}

		_, err := newTestService(repo).AssignLeastBusy(context.Background(), 5)
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestPickLeastBusy(t *testing.T) {
	list := []*domain.Waiter{
		{ID: 1, LifetimeAssignedCount: 5},
		{ID: 2, LifetimeAssignedCount: 2},
		{ID: 3, LifetimeAssignedCount: 2},
	}
	assert.Equal(t, int64(2), pickLeastBusy(list).ID)
}
