package journal

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifebot/backend/domain"
)

type fakeJournalRepo struct {
	entries []domain.JournalEntry
}

func (f *fakeJournalRepo) Create(_ context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.CreatedAt = time.Now()
	f.entries = append(f.entries, *entry)
	return entry, nil
}

func (f *fakeJournalRepo) ListByUser(_ context.Context, userID string) ([]domain.JournalEntry, error) {
	var out []domain.JournalEntry
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].UserID == userID {
			out = append(out, f.entries[i])
		}
	}
	return out, nil
}

func TestAddEntry(t *testing.T) {
	ctx := context.Background()
	repo := &fakeJournalRepo{}
	uc := New(repo, nil, nil)
	uc.now = func() time.Time { return time.Date(2026, time.August, 29, 21, 0, 0, 0, time.UTC) }

	t.Run("stamps today", func(t *testing.T) {
		entry, err := uc.AddEntry(ctx, "user-1", "  productive day  ", "happy")
		require.NoError(t, err)
		assert.Equal(t, "productive day", entry.Entry)
		assert.Equal(t, domain.Date{Year: 2026, Month: time.August, Day: 29}, entry.Date)
	})

	t.Run("rejects blank entry", func(t *testing.T) {
		_, err := uc.AddEntry(ctx, "user-1", "   ", "")
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
	})
}

func TestListEntries(t *testing.T) {
	ctx := context.Background()
	repo := &fakeJournalRepo{}
	uc := New(repo, nil, nil)

	_, err := uc.AddEntry(ctx, "user-1", "first", "")
	require.NoError(t, err)
	_, err = uc.AddEntry(ctx, "user-1", "second", "")
	require.NoError(t, err)

	entries, err := uc.ListEntries(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Entry)
	assert.Equal(t, "first", entries[1].Entry)
}
