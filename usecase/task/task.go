package task

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lifebot/backend/domain"
	"github.com/lifebot/backend/repository"
	"github.com/lifebot/backend/usecase"
)

// UseCase owns the user-scoped task list: add, list, toggle, delete and the
// completed-count read used by the profile history.
type UseCase struct {
	tasks  repository.TaskRepository
	buffer usecase.OperationBuffer
	logger *zap.Logger
	now    func() time.Time
}

func New(tasks repository.TaskRepository, buffer usecase.OperationBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		buffer: buffer,
		logger: logger,
		now:    time.Now,
	}
}

// Add creates an incomplete task. The title must be non-empty after trimming
// and the category must be one of the known values.
func (uc *UseCase) Add(ctx context.Context, userID, title string, due domain.Date, category domain.Category) (*domain.Task, error) {
	if userID == "" {
		return nil, domain.ErrInvalidPayload
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "task title is required")
	}
	if !category.IsValid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown task category")
	}

	task := &domain.Task{
		UserID:   userID,
		Title:    title,
		DueDate:  due,
		Category: category,
	}

	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		if uc.shouldBuffer(ctx, "create", task) {
			return task, nil
		}
		return nil, err
	}
	return created, nil
}

// List returns the user's tasks ordered incomplete-first, then by due date,
// then by insertion order.
func (uc *UseCase) List(ctx context.Context, userID string) ([]domain.Task, error) {
	return uc.tasks.List(ctx, userID)
}

// SetDone toggles completion. Completing stamps today's date; reopening
// clears it. Requesting the current state is a successful no-op.
func (uc *UseCase) SetDone(ctx context.Context, taskID string, done bool) (*domain.Task, error) {
	task, err := uc.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.Done == done {
		return task, nil
	}

	if done {
		task.Complete(domain.DateOf(uc.now()))
	} else {
		task.Reopen()
	}

	if err := uc.tasks.Update(ctx, task); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, err
		}
		if uc.shouldBuffer(ctx, "update", task) {
			return task, nil
		}
		return nil, err
	}
	return task, nil
}

// Delete removes the task permanently. Deleting an unknown id fails, so a
// repeated delete of the same id surfaces the missing row.
func (uc *UseCase) Delete(ctx context.Context, taskID string) error {
	if err := uc.tasks.Delete(ctx, taskID); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return err
		}
		if uc.shouldBuffer(ctx, "delete", &domain.Task{ID: taskID}) {
			return nil
		}
		return err
	}
	return nil
}

// CompletedCountOn reports how many of the user's tasks were completed on
// the given calendar date.
func (uc *UseCase) CompletedCountOn(ctx context.Context, userID string, date domain.Date) (int, error) {
	return uc.tasks.CountCompletedOn(ctx, userID, date)
}

func (uc *UseCase) shouldBuffer(ctx context.Context, operation string, task *domain.Task) bool {
	if uc.buffer == nil {
		return false
	}
	if err := uc.buffer.BufferTask(ctx, operation, task); err != nil {
		uc.logger.Error("failed to buffer task operation", zap.String("operation", operation), zap.Error(err))
		return false
	}
	uc.logger.Warn("task operation buffered", zap.String("operation", operation))
	return true
}
