package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lifebot/backend/domain"
	"github.com/lifebot/backend/repository"
)

type historyRepository struct {
	pool *pgxpool.Pool
}

// NewHistoryRepository returns a Postgres-backed implementation of HistoryRepository.
func NewHistoryRepository(pool *pgxpool.Pool) repository.HistoryRepository {
	return &historyRepository{pool: pool}
}

func (r *historyRepository) Upsert(ctx context.Context, point *domain.HistoryPoint) error {
	if point == nil || point.UserID == "" || point.Date.IsZero() {
		return domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO history (user_id, date, completed_count)
	VALUES ($1, $2, $3)
	ON CONFLICT (user_id, date) DO UPDATE
	SET completed_count = EXCLUDED.completed_count
	`
	if _, err := r.pool.Exec(ctx, query, point.UserID, point.Date.Time(), point.CompletedCount); err != nil {
		return storageErr(err)
	}
	return nil
}

func (r *historyRepository) ListByUser(ctx context.Context, userID string) ([]domain.HistoryPoint, error) {
	const query = `
	SELECT user_id, date, completed_count
	FROM history
	WHERE user_id = $1
	ORDER BY date
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	var points []domain.HistoryPoint
	for rows.Next() {
		var (
			point domain.HistoryPoint
			date  time.Time
		)
		if err := rows.Scan(&point.UserID, &date, &point.CompletedCount); err != nil {
			return nil, storageErr(err)
		}
		point.Date = domain.DateOf(date.UTC())
		points = append(points, point)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return points, nil
}
