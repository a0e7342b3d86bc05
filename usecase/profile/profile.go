package profile

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lifebot/backend/domain"
	"github.com/lifebot/backend/repository"
)

// UseCase derives the per-day completed-task series shown on the profile
// page. Only today's point is ever recomputed; past dates stay frozen at
// their last observed count.
type UseCase struct {
	tasks   repository.TaskRepository
	history repository.HistoryRepository
	logger  *zap.Logger
	now     func() time.Time
}

func New(tasks repository.TaskRepository, history repository.HistoryRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:   tasks,
		history: history,
		logger:  logger,
		now:     time.Now,
	}
}

// RecordToday recomputes today's completed count from current task state,
// upserts the (user, today) history row, and returns the full series in
// date order. No other date's row is touched.
func (uc *UseCase) RecordToday(ctx context.Context, userID string) ([]domain.HistoryPoint, error) {
	if userID == "" {
		return nil, domain.ErrInvalidPayload
	}

	today := domain.DateOf(uc.now())
	count, err := uc.tasks.CountCompletedOn(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	point := &domain.HistoryPoint{
		UserID:         userID,
		Date:           today,
		CompletedCount: count,
	}
	if err := uc.history.Upsert(ctx, point); err != nil {
		return nil, err
	}

	return uc.history.ListByUser(ctx, userID)
}

// History returns the stored series without refreshing today's point.
func (uc *UseCase) History(ctx context.Context, userID string) ([]domain.HistoryPoint, error) {
	return uc.history.ListByUser(ctx, userID)
}
