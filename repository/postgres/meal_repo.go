package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lifebot/backend/domain"
	"github.com/lifebot/backend/repository"
)

type mealRepository struct {
	pool *pgxpool.Pool
}

// NewMealRepository returns a Postgres-backed implementation of MealRepository.
func NewMealRepository(pool *pgxpool.Pool) repository.MealRepository {
	return &mealRepository{pool: pool}
}

func (r *mealRepository) Create(ctx context.Context, meal *domain.Meal) (*domain.Meal, error) {
	if meal == nil {
		return nil, domain.ErrInvalidPayload
	}
	if meal.ID == "" {
		meal.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO meals (id, user_id, date, meal_type, meal_name, mood)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING created_at
	`
	if err := r.pool.QueryRow(ctx, query,
		meal.ID,
		meal.UserID,
		meal.Date.Time(),
		string(meal.Type),
		meal.Name,
		meal.Mood,
	).Scan(&meal.CreatedAt); err != nil {
		return nil, storageErr(err)
	}
	return meal, nil
}

func (r *mealRepository) ListByUser(ctx context.Context, userID string) ([]domain.Meal, error) {
	const query = `
	SELECT id, user_id, date, meal_type, meal_name, mood, created_at
	FROM meals
	WHERE user_id = $1
	ORDER BY date DESC, created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	var meals []domain.Meal
	for rows.Next() {
		var (
			meal     domain.Meal
			date     time.Time
			mealType string
		)
		if err := rows.Scan(&meal.ID, &meal.UserID, &date, &mealType, &meal.Name, &meal.Mood, &meal.CreatedAt); err != nil {
			return nil, storageErr(err)
		}
		meal.Date = domain.DateOf(date.UTC())
		meal.Type = domain.MealType(mealType)
		meals = append(meals, meal)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return meals, nil
}

func (r *mealRepository) CountByDate(ctx context.Context, userID string) ([]domain.MealCount, error) {
	const query = `
	SELECT date, COUNT(*)
	FROM meals
	WHERE user_id = $1
	GROUP BY date
	ORDER BY date
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	var counts []domain.MealCount
	for rows.Next() {
		var (
			date  time.Time
			count domain.MealCount
		)
		if err := rows.Scan(&date, &count.Meals); err != nil {
			return nil, storageErr(err)
		}
		count.Date = domain.DateOf(date.UTC())
		counts = append(counts, count)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return counts, nil
}
