package bolt

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/lifebot/backend/domain"
	"github.com/lifebot/backend/repository"
)

type journalRepository struct {
	store *Store
}

// NewJournalRepository returns a bolt-backed implementation of JournalRepository.
func NewJournalRepository(store *Store) repository.JournalRepository {
	return &journalRepository{store: store}
}

func (r *journalRepository) Create(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	if entry == nil {
		return nil, domain.ErrInvalidPayload
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.CreatedAt = time.Now()

	err := r.store.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketJournals)
		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		payload, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		return bucket.Put(scopedKey(entry.UserID, seq), payload)
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return entry, nil
}

func (r *journalRepository) ListByUser(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	prefix := scopePrefix(userID)

	// Keys within a scope are insertion-ordered and entries are stamped at
	// creation time, so reversing the scan yields newest-first.
	err := r.store.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketJournals).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var entry domain.JournalEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}

	// Reverse into newest-first order.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}
