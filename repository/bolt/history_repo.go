package bolt

import (
	"bytes"
	"context"
	"encoding/json"

	bolt "go.etcd.io/bbolt"

	"github.com/lifebot/backend/domain"
	"github.com/lifebot/backend/repository"
)

type historyRepository struct {
	store *Store
}

// NewHistoryRepository returns a bolt-backed implementation of HistoryRepository.
func NewHistoryRepository(store *Store) repository.HistoryRepository {
	return &historyRepository{store: store}
}

// historyKey sorts lexicographically by date within a user scope, so a
// cursor scan yields the series in date order.
func historyKey(userID string, date domain.Date) []byte {
	return []byte(userID + "/" + date.String())
}

func (r *historyRepository) Upsert(ctx context.Context, point *domain.HistoryPoint) error {
	if point == nil || point.UserID == "" || point.Date.IsZero() {
		return domain.ErrInvalidPayload
	}

	err := r.store.db.Update(func(tx *bolt.Tx) error {
		payload, err := json.Marshal(point)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketHistory).Put(historyKey(point.UserID, point.Date), payload)
	})
	return storageErr(err)
}

func (r *historyRepository) ListByUser(ctx context.Context, userID string) ([]domain.HistoryPoint, error) {
	var points []domain.HistoryPoint
	prefix := scopePrefix(userID)

	err := r.store.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketHistory).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var point domain.HistoryPoint
			if err := json.Unmarshal(v, &point); err != nil {
				return err
			}
			points = append(points, point)
		}
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return points, nil
}
