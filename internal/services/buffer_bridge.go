package services

import (
	"context"
	"encoding/json"

	"github.com/lifebot/backend/domain"
	"github.com/lifebot/backend/internal/infrastructure/buffer"
	"github.com/lifebot/backend/usecase"
)

// BufferBridge adapts the buffer processor onto the use-case buffer port.
type BufferBridge struct {
	processor *BufferProcessor
}

func NewBufferBridge(processor *BufferProcessor) usecase.OperationBuffer {
	if processor == nil {
		return nil
	}
	return &BufferBridge{processor: processor}
}

func (b *BufferBridge) BufferTask(ctx context.Context, operation string, task *domain.Task) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return err
	}
	return b.processor.Enqueue(ctx, buffer.Item{
		UserID:    task.UserID,
		Entity:    buffer.EntityTask,
		Operation: operation,
		Data:      payload,
	})
}

func (b *BufferBridge) BufferJournal(ctx context.Context, operation string, entry *domain.JournalEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return b.processor.Enqueue(ctx, buffer.Item{
		UserID:    entry.UserID,
		Entity:    buffer.EntityJournal,
		Operation: operation,
		Data:      payload,
	})
}

func (b *BufferBridge) BufferMeal(ctx context.Context, operation string, meal *domain.Meal) error {
	payload, err := json.Marshal(meal)
	if err != nil {
		return err
	}
	return b.processor.Enqueue(ctx, buffer.Item{
		UserID:    meal.UserID,
		Entity:    buffer.EntityMeal,
		Operation: operation,
		Data:      payload,
	})
}
