package sqlite

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifebot/backend/domain"
	"github.com/lifebot/backend/repository"
)

type journalRepository struct {
	db *gorm.DB
}

// NewJournalRepository returns a SQLite-backed implementation of JournalRepository.
func NewJournalRepository(db *gorm.DB) repository.JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) Create(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	if entry == nil {
		return nil, domain.ErrInvalidPayload
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	rec := journalRecord{
		ID:     entry.ID,
		UserID: entry.UserID,
		Entry:  entry.Entry,
		Mood:   entry.Mood,
		Date:   entry.Date.Time(),
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, storageErr(err)
	}
	entry.CreatedAt = rec.CreatedAt
	return entry, nil
}

func (r *journalRepository) ListByUser(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	var recs []journalRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&recs).Error; err != nil {
		return nil, storageErr(err)
	}

	var entries []domain.JournalEntry
	for _, rec := range recs {
		entries = append(entries, domain.JournalEntry{
			ID:        rec.ID,
			UserID:    rec.UserID,
			Entry:     rec.Entry,
			Mood:      rec.Mood,
			Date:      domain.DateOf(rec.Date.UTC()),
			CreatedAt: rec.CreatedAt,
		})
	}
	return entries, nil
}
