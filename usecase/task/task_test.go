package task

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifebot/backend/domain"
)

type fakeTaskRepo struct {
	tasks map[string]*domain.Task
	order []string
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*domain.Task{}}
}

func (f *fakeTaskRepo) GetByID(_ context.Context, id string) (*domain.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	clone := *task
	return &clone, nil
}

func (f *fakeTaskRepo) List(_ context.Context, userID string) ([]domain.Task, error) {
	var out []domain.Task
	for _, id := range f.order {
		if task := f.tasks[id]; task != nil && task.UserID == userID {
			out = append(out, *task)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	clone := *task
	f.tasks[task.ID] = &clone
	f.order = append(f.order, task.ID)
	return task, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, task *domain.Task) error {
	if _, ok := f.tasks[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	task.UpdatedAt = time.Now()
	clone := *task
	f.tasks[task.ID] = &clone
	return nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(f.tasks, id)
	return nil
}

func (f *fakeTaskRepo) CountCompletedOn(_ context.Context, userID string, date domain.Date) (int, error) {
	count := 0
	for _, task := range f.tasks {
		if task.UserID == userID && task.Done && task.CompletedDate == date {
			count++
		}
	}
	return count, nil
}

func fixedNow() time.Time {
	return time.Date(2026, time.August, 29, 14, 0, 0, 0, time.UTC)
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTaskRepo()
	uc := New(repo, nil, nil)

	t.Run("creates incomplete task", func(t *testing.T) {
		due := domain.Date{Year: 2026, Month: time.September, Day: 10}
		task, err := uc.Add(ctx, "user-1", "  finish thesis  ", due, domain.CategoryStudy)
		require.NoError(t, err)

		assert.NotEmpty(t, task.ID)
		assert.Equal(t, "finish thesis", task.Title)
		assert.Equal(t, due, task.DueDate)
		assert.False(t, task.Done)
		assert.True(t, task.CompletedDate.IsZero())
	})

	t.Run("rejects blank title", func(t *testing.T) {
		_, err := uc.Add(ctx, "user-1", "   ", domain.Date{}, domain.CategoryOther)
		require.Error(t, err)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := uc.Add(ctx, "user-1", "walk the dog", domain.Date{}, domain.Category("Chores"))
		require.Error(t, err)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
	})
}

func TestSetDone(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTaskRepo()
	uc := New(repo, nil, nil)
	uc.now = fixedNow

	created, err := uc.Add(ctx, "user-1", "water plants", domain.Date{Year: 2026, Month: time.August, Day: 30}, domain.CategoryPersonal)
	require.NoError(t, err)

	t.Run("completing stamps today", func(t *testing.T) {
		task, err := uc.SetDone(ctx, created.ID, true)
		require.NoError(t, err)
		assert.True(t, task.Done)
		assert.Equal(t, domain.DateOf(fixedNow()), task.CompletedDate)
	})

	t.Run("same state is a no-op", func(t *testing.T) {
		task, err := uc.SetDone(ctx, created.ID, true)
		require.NoError(t, err)
		assert.True(t, task.Done)
	})

	t.Run("reopening clears the completion date", func(t *testing.T) {
		task, err := uc.SetDone(ctx, created.ID, false)
		require.NoError(t, err)
		assert.False(t, task.Done)
		assert.True(t, task.CompletedDate.IsZero())
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := uc.SetDone(ctx, "no-such-task", true)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTaskRepo()
	uc := New(repo, nil, nil)

	created, err := uc.Add(ctx, "user-1", "buy groceries", domain.Date{}, domain.CategoryOther)
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))

	// The second delete of the same id reports the missing row.
	err = uc.Delete(ctx, created.ID)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestCompletedCountOn(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTaskRepo()
	uc := New(repo, nil, nil)
	uc.now = fixedNow

	today := domain.DateOf(fixedNow())

	for _, title := range []string{"one", "two", "three"} {
		created, err := uc.Add(ctx, "user-1", title, today, domain.CategoryWork)
		require.NoError(t, err)
		if title != "three" {
			_, err = uc.SetDone(ctx, created.ID, true)
			require.NoError(t, err)
		}
	}

	count, err := uc.CompletedCountOn(ctx, "user-1", today)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = uc.CompletedCountOn(ctx, "user-2", today)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
