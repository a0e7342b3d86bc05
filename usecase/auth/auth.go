package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lifebot/backend/domain"
	"github.com/lifebot/backend/repository"
)

// UseCase resolves display names to stable user identities and manages the
// session cache in front of them.
type UseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	logger   *zap.Logger
	ttl      time.Duration
}

func New(users repository.UserRepository, sessions repository.SessionRepository, logger *zap.Logger, ttl time.Duration) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &UseCase{
		users:    users,
		sessions: sessions,
		logger:   logger,
		ttl:      ttl,
	}
}

// Resolve maps a display name onto its user, creating the user on first
// sight. Resolution is idempotent: the same normalized name always yields
// the same identity.
func (uc *UseCase) Resolve(ctx context.Context, displayName string) (*domain.User, error) {
	normalized := domain.NormalizeUsername(displayName)
	if normalized == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "display name is required")
	}

	user, err := uc.users.GetByUsername(ctx, normalized)
	if err == nil {
		return user, nil
	}
	if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		return nil, err
	}

	user = &domain.User{Username: normalized}
	if err := uc.users.Create(ctx, user); err != nil {
		// Lost a race with a concurrent first login; the row now exists.
		if domain.IsDomainError(err, domain.ErrCodeConflict) {
			return uc.users.GetByUsername(ctx, normalized)
		}
		return nil, err
	}

	uc.logger.Info("user created", zap.String("user_id", user.ID), zap.String("username", user.Username))
	return user, nil
}

// Login resolves the name and opens a session for the user.
func (uc *UseCase) Login(ctx context.Context, displayName string) (*domain.User, *domain.Session, error) {
	user, err := uc.Resolve(ctx, displayName)
	if err != nil {
		return nil, nil, err
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(uc.ttl),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

func (uc *UseCase) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsExpired(time.Now()) {
		_ = uc.sessions.Delete(ctx, sessionID)
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (uc *UseCase) Logout(ctx context.Context, sessionID string) error {
	return uc.sessions.Delete(ctx, sessionID)
}
