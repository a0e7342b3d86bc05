package repository

import (
	"context"

	"github.com/lifebot/backend/domain"
)

type MealRepository interface {
	Create(ctx context.Context, meal *domain.Meal) (*domain.Meal, error)
	// ListByUser returns logged meals newest-first.
	ListByUser(ctx context.Context, userID string) ([]domain.Meal, error)
	// CountByDate returns per-day meal counts ordered by date ascending.
	CountByDate(ctx context.Context, userID string) ([]domain.MealCount, error)
}
