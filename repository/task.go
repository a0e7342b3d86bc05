package repository

import (
	"context"

	"github.com/lifebot/backend/domain"
)

type TaskRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// List returns the user's tasks ordered incomplete-first, then due date
	// ascending, with insertion order breaking ties.
	List(ctx context.Context, userID string) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
	// CountCompletedOn counts the user's done tasks completed on the given date.
	CountCompletedOn(ctx context.Context, userID string, date domain.Date) (int, error)
}
