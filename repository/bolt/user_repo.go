package bolt

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/lifebot/backend/domain"
	"github.com/lifebot/backend/repository"
)

type userRepository struct {
	store *Store
}

// NewUserRepository returns a bolt-backed implementation of UserRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user *domain.User
	err := r.store.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketUsers).Get([]byte(id))
		if raw == nil {
			return domain.ErrUserNotFound
		}
		user = &domain.User{}
		return json.Unmarshal(raw, user)
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var id string
	err := r.store.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketUsernames).Get([]byte(username))
		if raw == nil {
			return domain.ErrUserNotFound
		}
		id = string(raw)
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return r.GetByID(ctx, id)
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user == nil || user.Username == "" {
		return domain.ErrInvalidPayload
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	err := r.store.db.Update(func(tx *bolt.Tx) error {
		names := tx.Bucket(bucketUsernames)
		if names.Get([]byte(user.Username)) != nil {
			return domain.NewError(domain.ErrCodeConflict, "username already taken")
		}

		payload, err := json.Marshal(user)
		if err != nil {
			return err
		}
		if err := tx.Bucket(bucketUsers).Put([]byte(user.ID), payload); err != nil {
			return err
		}
		return names.Put([]byte(user.Username), []byte(user.ID))
	})
	return storageErr(err)
}
