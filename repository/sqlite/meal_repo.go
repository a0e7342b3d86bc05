package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifebot/backend/domain"
	"github.com/lifebot/backend/repository"
)

type mealRepository struct {
	db *gorm.DB
}

// NewMealRepository returns a SQLite-backed implementation of MealRepository.
func NewMealRepository(db *gorm.DB) repository.MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) Create(ctx context.Context, meal *domain.Meal) (*domain.Meal, error) {
	if meal == nil {
		return nil, domain.ErrInvalidPayload
	}
	if meal.ID == "" {
		meal.ID = uuid.NewString()
	}

	rec := mealRecord{
		ID:       meal.ID,
		UserID:   meal.UserID,
		Date:     meal.Date.Time(),
		MealType: string(meal.Type),
		MealName: meal.Name,
		Mood:     meal.Mood,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, storageErr(err)
	}
	meal.CreatedAt = rec.CreatedAt
	return meal, nil
}

func (r *mealRepository) ListByUser(ctx context.Context, userID string) ([]domain.Meal, error) {
	var recs []mealRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&recs).Error; err != nil {
		return nil, storageErr(err)
	}

	var meals []domain.Meal
	for _, rec := range recs {
		meals = append(meals, domain.Meal{
			ID:        rec.ID,
			UserID:    rec.UserID,
			Date:      domain.DateOf(rec.Date.UTC()),
			Type:      domain.MealType(rec.MealType),
			Name:      rec.MealName,
			Mood:      rec.Mood,
			CreatedAt: rec.CreatedAt,
		})
	}
	return meals, nil
}

func (r *mealRepository) CountByDate(ctx context.Context, userID string) ([]domain.MealCount, error) {
	var rows []struct {
		Date  time.Time
		Meals int
	}
	if err := r.db.WithContext(ctx).Model(&mealRecord{}).
		Select("date, COUNT(*) AS meals").
		Where("user_id = ?", userID).
		Group("date").
		Order("date").
		Scan(&rows).Error; err != nil {
		return nil, storageErr(err)
	}

	var counts []domain.MealCount
	for _, row := range rows {
		counts = append(counts, domain.MealCount{
			Date:  domain.DateOf(row.Date.UTC()),
			Meals: row.Meals,
		})
	}
	return counts, nil
}
