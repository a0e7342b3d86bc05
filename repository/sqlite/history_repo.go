package sqlite

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lifebot/backend/domain"
	"github.com/lifebot/backend/repository"
)

type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository returns a SQLite-backed implementation of HistoryRepository.
func NewHistoryRepository(db *gorm.DB) repository.HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Upsert(ctx context.Context, point *domain.HistoryPoint) error {
	if point == nil || point.UserID == "" || point.Date.IsZero() {
		return domain.ErrInvalidPayload
	}

	rec := historyRecord{
		UserID:         point.UserID,
		Date:           point.Date.Time(),
		CompletedCount: point.CompletedCount,
	}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed_count"}),
	}).Create(&rec).Error; err != nil {
		return storageErr(err)
	}
	return nil
}

func (r *historyRepository) ListByUser(ctx context.Context, userID string) ([]domain.HistoryPoint, error) {
	var recs []historyRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date").
		Find(&recs).Error; err != nil {
		return nil, storageErr(err)
	}

	var points []domain.HistoryPoint
	for _, rec := range recs {
		points = append(points, domain.HistoryPoint{
			UserID:         rec.UserID,
			Date:           domain.DateOf(rec.Date.UTC()),
			CompletedCount: rec.CompletedCount,
		})
	}
	return points, nil
}
