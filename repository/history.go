package repository

import (
	"context"

	"github.com/lifebot/backend/domain"
)

type HistoryRepository interface {
	// Upsert atomically inserts the point or overwrites the completed count
	// of the existing (user, date) row.
	Upsert(ctx context.Context, point *domain.HistoryPoint) error
	// ListByUser returns the user's full series ordered by date ascending.
	ListByUser(ctx context.Context, userID string) ([]domain.HistoryPoint, error)
}
