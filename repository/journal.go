package repository

import (
	"context"

	"github.com/lifebot/backend/domain"
)

type JournalRepository interface {
	Create(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error)
	// ListByUser returns entries newest-first.
	ListByUser(ctx context.Context, userID string) ([]domain.JournalEntry, error)
}
