package sqlite

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifebot/backend/domain"
	"github.com/lifebot/backend/repository"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a SQLite-backed implementation of UserRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var rec userRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		return nil, notFound(err, domain.ErrUserNotFound)
	}
	return &domain.User{ID: rec.ID, Username: rec.Username, CreatedAt: rec.CreatedAt}, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var rec userRecord
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&rec).Error; err != nil {
		return nil, notFound(err, domain.ErrUserNotFound)
	}
	return &domain.User{ID: rec.ID, Username: rec.Username, CreatedAt: rec.CreatedAt}, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user == nil || user.Username == "" {
		return domain.ErrInvalidPayload
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	rec := userRecord{ID: user.ID, Username: user.Username}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewError(domain.ErrCodeConflict, "username already taken")
		}
		return storageErr(err)
	}
	user.CreatedAt = rec.CreatedAt
	return nil
}
