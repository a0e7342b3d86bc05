package meal

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifebot/backend/domain"
)

type fakeMealRepo struct {
	meals []domain.Meal
}

func (f *fakeMealRepo) Create(_ context.Context, meal *domain.Meal) (*domain.Meal, error) {
	if meal.ID == "" {
		meal.ID = uuid.NewString()
	}
	meal.CreatedAt = time.Now()
	f.meals = append(f.meals, *meal)
	return meal, nil
}

func (f *fakeMealRepo) ListByUser(_ context.Context, userID string) ([]domain.Meal, error) {
	var out []domain.Meal
	for i := len(f.meals) - 1; i >= 0; i-- {
		if f.meals[i].UserID == userID {
			out = append(out, f.meals[i])
		}
	}
	return out, nil
}

func (f *fakeMealRepo) CountByDate(_ context.Context, userID string) ([]domain.MealCount, error) {
	counts := map[domain.Date]int{}
	for _, meal := range f.meals {
		if meal.UserID == userID {
			counts[meal.Date]++
		}
	}
	var out []domain.MealCount
	for date, n := range counts {
		out = append(out, domain.MealCount{Date: date, Meals: n})
	}
	return out, nil
}

func TestCurrentSlot(t *testing.T) {
	day := func(hour int) time.Time {
		return time.Date(2026, time.August, 29, hour, 30, 0, 0, time.UTC)
	}

	assert.Equal(t, domain.MealBreakfast, CurrentSlot(day(0)))
	assert.Equal(t, domain.MealBreakfast, CurrentSlot(day(10)))
	assert.Equal(t, domain.MealLunch, CurrentSlot(day(11)))
	assert.Equal(t, domain.MealLunch, CurrentSlot(day(16)))
	assert.Equal(t, domain.MealDinner, CurrentSlot(day(17)))
	assert.Equal(t, domain.MealDinner, CurrentSlot(day(23)))
}

func TestLogMeal(t *testing.T) {
	ctx := context.Background()
	repo := &fakeMealRepo{}
	uc := New(repo, nil, nil)
	uc.now = func() time.Time { return time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC) }

	t.Run("stamps today", func(t *testing.T) {
		meal, err := uc.LogMeal(ctx, "user-1", domain.MealLunch, "Paneer wrap", "happy")
		require.NoError(t, err)
		assert.Equal(t, domain.Date{Year: 2026, Month: time.August, Day: 29}, meal.Date)
		assert.Equal(t, domain.MealLunch, meal.Type)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := uc.LogMeal(ctx, "user-1", domain.MealLunch, "  ", "")
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
	})

	t.Run("rejects unknown slot", func(t *testing.T) {
		_, err := uc.LogMeal(ctx, "user-1", domain.MealType("Brunch"), "Toast", "")
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
	})
}

func TestSuggestions(t *testing.T) {
	uc := New(&fakeMealRepo{}, nil, nil)
	uc.now = func() time.Time { return time.Date(2026, time.August, 29, 8, 0, 0, 0, time.UTC) }

	slot, ideas := uc.Suggestions()
	assert.Equal(t, domain.MealBreakfast, slot)
	assert.Contains(t, ideas, "Oats with fruits")

	uc.now = func() time.Time { return time.Date(2026, time.August, 29, 19, 0, 0, 0, time.UTC) }
	slot, ideas = uc.Suggestions()
	assert.Equal(t, domain.MealDinner, slot)
	assert.NotEmpty(t, ideas)
}

func TestOverview(t *testing.T) {
	ctx := context.Background()
	repo := &fakeMealRepo{}
	uc := New(repo, nil, nil)
	uc.now = func() time.Time { return time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC) }

	_, err := uc.LogMeal(ctx, "user-1", domain.MealBreakfast, "Smoothie bowl", "")
	require.NoError(t, err)
	_, err = uc.LogMeal(ctx, "user-1", domain.MealLunch, "Vegetable dal & rice", "")
	require.NoError(t, err)

	counts, err := uc.Overview(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, 2, counts[0].Meals)
}
