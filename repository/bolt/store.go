// Package bolt implements the repository interfaces on top of a single local
// bbolt file, keeping every mutation inside one write transaction.
package bolt

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/lifebot/backend/domain"
)

var (
	bucketUsers     = []byte("users")
	bucketUsernames = []byte("usernames")
	bucketTasks     = []byte("tasks")
	bucketHistory   = []byte("history")
	bucketJournals  = []byte("journals")
	bucketMeals     = []byte("meals")
)

// Store owns the bbolt database shared by the entity repositories.
type Store struct {
	db *bolt.DB
}

// Open initializes the database file and ensures all entity buckets exist.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketUsers, bucketUsernames, bucketTasks, bucketHistory, bucketJournals, bucketMeals} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Stats exposes bbolt statistics for health endpoints.
func (s *Store) Stats() bolt.Stats {
	if s == nil || s.db == nil {
		return bolt.Stats{}
	}
	return s.db.Stats()
}

func storageErr(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*domain.Error); ok {
		return err
	}
	return domain.WrapError(domain.ErrCodeUnavailable, "bolt store unavailable", err)
}

// scopedKey builds a user-scoped key whose suffix preserves insertion order.
func scopedKey(userID string, seq uint64) []byte {
	return []byte(fmt.Sprintf("%s/%020d", userID, seq))
}

func scopePrefix(userID string) []byte {
	return []byte(userID + "/")
}
