package bolt

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/lifebot/backend/domain"
	"github.com/lifebot/backend/repository"
)

type mealRepository struct {
	store *Store
}

// NewMealRepository returns a bolt-backed implementation of MealRepository.
func NewMealRepository(store *Store) repository.MealRepository {
	return &mealRepository{store: store}
}

func (r *mealRepository) Create(ctx context.Context, meal *domain.Meal) (*domain.Meal, error) {
	if meal == nil {
		return nil, domain.ErrInvalidPayload
	}
	if meal.ID == "" {
		meal.ID = uuid.NewString()
	}
	meal.CreatedAt = time.Now()

	err := r.store.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketMeals)
		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		payload, err := json.Marshal(meal)
		if err != nil {
			return err
		}
		return bucket.Put(scopedKey(meal.UserID, seq), payload)
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return meal, nil
}

func (r *mealRepository) ListByUser(ctx context.Context, userID string) ([]domain.Meal, error) {
	meals, err := r.scan(userID)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(meals)-1; i < j; i, j = i+1, j-1 {
		meals[i], meals[j] = meals[j], meals[i]
	}
	return meals, nil
}

func (r *mealRepository) CountByDate(ctx context.Context, userID string) ([]domain.MealCount, error) {
	meals, err := r.scan(userID)
	if err != nil {
		return nil, err
	}

	byDate := make(map[domain.Date]int)
	for _, meal := range meals {
		byDate[meal.Date]++
	}

	var counts []domain.MealCount
	for date, n := range byDate {
		counts = append(counts, domain.MealCount{Date: date, Meals: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Date.Before(counts[j].Date)
	})
	return counts, nil
}

func (r *mealRepository) scan(userID string) ([]domain.Meal, error) {
	var meals []domain.Meal
	prefix := scopePrefix(userID)

	err := r.store.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketMeals).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var meal domain.Meal
			if err := json.Unmarshal(v, &meal); err != nil {
				return err
			}
			meals = append(meals, meal)
		}
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return meals, nil
}
