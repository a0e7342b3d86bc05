package journal

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lifebot/backend/domain"
	"github.com/lifebot/backend/repository"
	"github.com/lifebot/backend/usecase"
)

type UseCase struct {
	journals repository.JournalRepository
	buffer   usecase.OperationBuffer
	logger   *zap.Logger
	now      func() time.Time
}

func New(journals repository.JournalRepository, buffer usecase.OperationBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		journals: journals,
		buffer:   buffer,
		logger:   logger,
		now:      time.Now,
	}
}

// AddEntry saves a journal entry stamped with today's date.
func (uc *UseCase) AddEntry(ctx context.Context, userID, entry, mood string) (*domain.JournalEntry, error) {
	if userID == "" {
		return nil, domain.ErrInvalidPayload
	}
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "journal entry is required")
	}

	record := &domain.JournalEntry{
		UserID: userID,
		Entry:  entry,
		Mood:   mood,
		Date:   domain.DateOf(uc.now()),
	}

	created, err := uc.journals.Create(ctx, record)
	if err != nil {
		if uc.buffer != nil {
			if bufErr := uc.buffer.BufferJournal(ctx, "create", record); bufErr == nil {
				uc.logger.Warn("journal entry buffered", zap.Error(err))
				return record, nil
			}
		}
		return nil, err
	}
	return created, nil
}

// ListEntries returns the user's entries newest-first.
func (uc *UseCase) ListEntries(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	return uc.journals.ListByUser(ctx, userID)
}
