package usecase

import (
	"context"

	"github.com/lifebot/backend/domain"
)

// OperationBuffer abstracts the offline write buffer so use cases stay
// storage-agnostic. A nil buffer means storage failures are terminal.
type OperationBuffer interface {
	BufferTask(ctx context.Context, operation string, task *domain.Task) error
	BufferJournal(ctx context.Context, operation string, entry *domain.JournalEntry) error
	BufferMeal(ctx context.Context, operation string, meal *domain.Meal) error
}
