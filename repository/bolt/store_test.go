package bolt

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifebot/backend/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.bolt"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	repo := NewUserRepository(store)

	t.Run("create and look up", func(t *testing.T) {
		user := &domain.User{Username: "alice"}
		require.NoError(t, repo.Create(ctx, user))
		require.NotEmpty(t, user.ID)

		byName, err := repo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byName.ID)

		byID, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", byID.Username)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		err := repo.Create(ctx, &domain.User{Username: "alice"})
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeConflict))
	})

	t.Run("unknown lookups", func(t *testing.T) {
		_, err := repo.GetByUsername(ctx, "nobody")
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))

		_, err = repo.GetByID(ctx, "missing-id")
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
	})
}

func TestTaskRepositoryOrdering(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	repo := NewTaskRepository(store)

	date := func(month time.Month, day int) domain.Date {
		return domain.Date{Year: 2026, Month: month, Day: day}
	}

	// Inserted out of order on purpose: a done task first, then two open
	// ones whose due dates invert their insertion order.
	seed := []domain.Task{
		{UserID: "user-1", Title: "done early", Done: true, DueDate: date(time.January, 1), CompletedDate: date(time.January, 1), Category: domain.CategoryWork},
		{UserID: "user-1", Title: "due march", DueDate: date(time.March, 1), Category: domain.CategoryWork},
		{UserID: "user-1", Title: "due feb", DueDate: date(time.February, 1), Category: domain.CategoryWork},
	}
	for i := range seed {
		_, err := repo.Create(ctx, &seed[i])
		require.NoError(t, err)
	}

	tasks, err := repo.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	assert.Equal(t, "due feb", tasks[0].Title)
	assert.Equal(t, "due march", tasks[1].Title)
	assert.Equal(t, "done early", tasks[2].Title)
}

func TestTaskRepositoryTieBreak(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	repo := NewTaskRepository(store)

	due := domain.Date{Year: 2026, Month: time.June, Day: 1}
	for _, title := range []string{"first", "second", "third"} {
		_, err := repo.Create(ctx, &domain.Task{UserID: "user-1", Title: title, DueDate: due, Category: domain.CategoryOther})
		require.NoError(t, err)
	}

	tasks, err := repo.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	// Equal dates fall back to insertion order.
	assert.Equal(t, "first", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
	assert.Equal(t, "third", tasks[2].Title)
}

func TestTaskRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	repo := NewTaskRepository(store)

	task := &domain.Task{UserID: "user-1", Title: "lifecycle", DueDate: domain.Date{Year: 2026, Month: time.July, Day: 1}, Category: domain.CategoryPersonal}
	created, err := repo.Create(ctx, task)
	require.NoError(t, err)

	completedOn := domain.Date{Year: 2026, Month: time.August, Day: 29}
	created.Complete(completedOn)
	require.NoError(t, repo.Update(ctx, created))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Done)
	assert.Equal(t, completedOn, got.CompletedDate)

	count, err := repo.CountCompletedOn(ctx, "user-1", completedOn)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, repo.Delete(ctx, created.ID))
	err = repo.Delete(ctx, created.ID)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))

	err = repo.Update(ctx, created)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestHistoryRepository(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	repo := NewHistoryRepository(store)

	date := func(day int) domain.Date {
		return domain.Date{Year: 2026, Month: time.August, Day: day}
	}

	// Upserting the same date twice overwrites in place.
	require.NoError(t, repo.Upsert(ctx, &domain.HistoryPoint{UserID: "user-1", Date: date(29), CompletedCount: 1}))
	require.NoError(t, repo.Upsert(ctx, &domain.HistoryPoint{UserID: "user-1", Date: date(29), CompletedCount: 4}))
	require.NoError(t, repo.Upsert(ctx, &domain.HistoryPoint{UserID: "user-1", Date: date(27), CompletedCount: 2}))
	require.NoError(t, repo.Upsert(ctx, &domain.HistoryPoint{UserID: "user-2", Date: date(29), CompletedCount: 9}))

	points, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, date(27), points[0].Date)
	assert.Equal(t, 2, points[0].CompletedCount)
	assert.Equal(t, date(29), points[1].Date)
	assert.Equal(t, 4, points[1].CompletedCount)
}

func TestJournalRepository(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	repo := NewJournalRepository(store)

	for _, text := range []string{"morning", "evening"} {
		_, err := repo.Create(ctx, &domain.JournalEntry{
			UserID: "user-1",
			Entry:  text,
			Date:   domain.Date{Year: 2026, Month: time.August, Day: 29},
		})
		require.NoError(t, err)
	}

	entries, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "evening", entries[0].Entry)
	assert.Equal(t, "morning", entries[1].Entry)
}

func TestMealRepository(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	repo := NewMealRepository(store)

	date := func(day int) domain.Date {
		return domain.Date{Year: 2026, Month: time.August, Day: day}
	}

	seed := []domain.Meal{
		{UserID: "user-1", Date: date(28), Type: domain.MealDinner, Name: "Tofu stir fry"},
		{UserID: "user-1", Date: date(29), Type: domain.MealBreakfast, Name: "Smoothie bowl"},
		{UserID: "user-1", Date: date(29), Type: domain.MealLunch, Name: "Paneer wrap"},
	}
	for i := range seed {
		_, err := repo.Create(ctx, &seed[i])
		require.NoError(t, err)
	}

	meals, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, meals, 3)
	assert.Equal(t, "Paneer wrap", meals[0].Name)

	counts, err := repo.CountByDate(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, date(28), counts[0].Date)
	assert.Equal(t, 1, counts[0].Meals)
	assert.Equal(t, date(29), counts[1].Date)
	assert.Equal(t, 2, counts[1].Meals)
}
