package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lifebot/backend/domain"
	"github.com/lifebot/backend/repository"
)

type journalRepository struct {
	pool *pgxpool.Pool
}

// NewJournalRepository returns a Postgres-backed implementation of JournalRepository.
func NewJournalRepository(pool *pgxpool.Pool) repository.JournalRepository {
	return &journalRepository{pool: pool}
}

func (r *journalRepository) Create(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	if entry == nil {
		return nil, domain.ErrInvalidPayload
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO journals (id, user_id, entry, mood, date)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING created_at
	`
	if err := r.pool.QueryRow(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Entry,
		entry.Mood,
		entry.Date.Time(),
	).Scan(&entry.CreatedAt); err != nil {
		return nil, storageErr(err)
	}
	return entry, nil
}

func (r *journalRepository) ListByUser(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	const query = `
	SELECT id, user_id, entry, mood, date, created_at
	FROM journals
	WHERE user_id = $1
	ORDER BY date DESC, created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		var (
			entry domain.JournalEntry
			date  time.Time
		)
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Entry, &entry.Mood, &date, &entry.CreatedAt); err != nil {
			return nil, storageErr(err)
		}
		entry.Date = domain.DateOf(date.UTC())
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return entries, nil
}
