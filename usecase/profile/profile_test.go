package profile

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifebot/backend/domain"
)

type fakeTaskCounts struct {
	counts map[string]map[domain.Date]int
}

func (f *fakeTaskCounts) GetByID(context.Context, string) (*domain.Task, error) {
	panic("not used")
}

func (f *fakeTaskCounts) List(context.Context, string) ([]domain.Task, error) {
	panic("not used")
}

func (f *fakeTaskCounts) Create(context.Context, *domain.Task) (*domain.Task, error) {
	panic("not used")
}

func (f *fakeTaskCounts) Update(context.Context, *domain.Task) error {
	panic("not used")
}

func (f *fakeTaskCounts) Delete(context.Context, string) error {
	panic("not used")
}

func (f *fakeTaskCounts) CountCompletedOn(_ context.Context, userID string, date domain.Date) (int, error) {
	return f.counts[userID][date], nil
}

type fakeHistoryRepo struct {
	points map[string]map[domain.Date]int
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{points: map[string]map[domain.Date]int{}}
}

func (f *fakeHistoryRepo) Upsert(_ context.Context, point *domain.HistoryPoint) error {
	if f.points[point.UserID] == nil {
		f.points[point.UserID] = map[domain.Date]int{}
	}
	f.points[point.UserID][point.Date] = point.CompletedCount
	return nil
}

func (f *fakeHistoryRepo) ListByUser(_ context.Context, userID string) ([]domain.HistoryPoint, error) {
	var out []domain.HistoryPoint
	for date, count := range f.points[userID] {
		out = append(out, domain.HistoryPoint{UserID: userID, Date: date, CompletedCount: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func TestRecordToday(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.August, 29, 9, 0, 0, 0, time.UTC)
	today := domain.DateOf(now)
	yesterday := domain.Date{Year: 2026, Month: time.August, Day: 28}

	tasks := &fakeTaskCounts{counts: map[string]map[domain.Date]int{
		"user-1": {today: 2},
	}}
	history := newFakeHistoryRepo()
	require.NoError(t, history.Upsert(ctx, &domain.HistoryPoint{UserID: "user-1", Date: yesterday, CompletedCount: 5}))

	uc := New(tasks, history, nil)
	uc.now = func() time.Time { return now }

	t.Run("repeat calls collapse to one row per day", func(t *testing.T) {
		var series []domain.HistoryPoint
		var err error
		for i := 0; i < 3; i++ {
			series, err = uc.RecordToday(ctx, "user-1")
			require.NoError(t, err)
		}

		require.Len(t, series, 2)
		assert.Equal(t, yesterday, series[0].Date)
		assert.Equal(t, 5, series[0].CompletedCount)
		assert.Equal(t, today, series[1].Date)
		assert.Equal(t, 2, series[1].CompletedCount)
	})

	t.Run("today's count tracks current task state", func(t *testing.T) {
		tasks.counts["user-1"][today] = 3

		series, err := uc.RecordToday(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, series, 2)
		assert.Equal(t, 3, series[1].CompletedCount)

		// Yesterday stays frozen.
		assert.Equal(t, 5, series[0].CompletedCount)
	})

	t.Run("empty user id is rejected", func(t *testing.T) {
		_, err := uc.RecordToday(ctx, "")
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
	})
}

func TestHistoryReadOnly(t *testing.T) {
	ctx := context.Background()
	history := newFakeHistoryRepo()
	date := domain.Date{Year: 2026, Month: time.August, Day: 20}
	require.NoError(t, history.Upsert(ctx, &domain.HistoryPoint{UserID: "user-1", Date: date, CompletedCount: 4}))

	uc := New(&fakeTaskCounts{}, history, nil)

	series, err := uc.History(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, 4, series[0].CompletedCount)
}
