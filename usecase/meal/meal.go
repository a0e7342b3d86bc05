package meal

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lifebot/backend/domain"
	"github.com/lifebot/backend/repository"
	"github.com/lifebot/backend/usecase"
)

// suggestions holds the static healthy-meal ideas served per meal slot.
var suggestions = map[domain.MealType][]string{
	domain.MealBreakfast: {"Oats with fruits", "Boiled eggs & toast", "Smoothie bowl"},
	domain.MealLunch:     {"Grilled chicken salad", "Vegetable dal & rice", "Paneer wrap"},
	domain.MealDinner:    {"Soup & whole grain bread", "Quinoa & vegetables", "Tofu stir fry"},
	domain.MealSnack:     {"Fruit salad", "Greek yogurt", "Roasted nuts"},
}

type UseCase struct {
	meals  repository.MealRepository
	buffer usecase.OperationBuffer
	logger *zap.Logger
	now    func() time.Time
}

func New(meals repository.MealRepository, buffer usecase.OperationBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		meals:  meals,
		buffer: buffer,
		logger: logger,
		now:    time.Now,
	}
}

// LogMeal records a meal eaten today.
func (uc *UseCase) LogMeal(ctx context.Context, userID string, mealType domain.MealType, name, mood string) (*domain.Meal, error) {
	if userID == "" {
		return nil, domain.ErrInvalidPayload
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "meal name is required")
	}
	if !mealType.IsValid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown meal type")
	}

	meal := &domain.Meal{
		UserID: userID,
		Date:   domain.DateOf(uc.now()),
		Type:   mealType,
		Name:   name,
		Mood:   mood,
	}

	created, err := uc.meals.Create(ctx, meal)
	if err != nil {
		if uc.buffer != nil {
			if bufErr := uc.buffer.BufferMeal(ctx, "create", meal); bufErr == nil {
				uc.logger.Warn("meal log buffered", zap.Error(err))
				return meal, nil
			}
		}
		return nil, err
	}
	return created, nil
}

// ListMeals returns the user's logged meals newest-first.
func (uc *UseCase) ListMeals(ctx context.Context, userID string) ([]domain.Meal, error) {
	return uc.meals.ListByUser(ctx, userID)
}

// Overview returns per-day meal counts for the overview chart.
func (uc *UseCase) Overview(ctx context.Context, userID string) ([]domain.MealCount, error) {
	return uc.meals.CountByDate(ctx, userID)
}

// CurrentSlot maps an hour of day onto the meal slot being suggested.
func CurrentSlot(at time.Time) domain.MealType {
	switch hour := at.Hour(); {
	case hour < 11:
		return domain.MealBreakfast
	case hour < 17:
		return domain.MealLunch
	default:
		return domain.MealDinner
	}
}

// Suggestions returns healthy-meal ideas for the slot derived from the
// current time.
func (uc *UseCase) Suggestions() (domain.MealType, []string) {
	slot := CurrentSlot(uc.now())
	return slot, suggestions[slot]
}
