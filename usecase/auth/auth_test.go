package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifebot/backend/domain"
)

type fakeUserRepo struct {
	byName map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byName: map[string]*domain.User{}}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, user := range f.byName {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := f.byName[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, ok := f.byName[user.Username]; ok {
		return domain.NewError(domain.ErrCodeConflict, "username already taken")
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	f.byName[user.Username] = user
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*domain.Session{}}
}

func (f *fakeSessionRepo) Get(_ context.Context, id string) (*domain.Session, error) {
	session, ok := f.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (f *fakeSessionRepo) Save(_ context.Context, session *domain.Session) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	uc := New(users, newFakeSessionRepo(), nil, time.Hour)

	t.Run("name variants share one identity", func(t *testing.T) {
		first, err := uc.Resolve(ctx, "Alice")
		require.NoError(t, err)
		require.NotEmpty(t, first.ID)
		assert.Equal(t, "alice", first.Username)

		second, err := uc.Resolve(ctx, "  alice ")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		third, err := uc.Resolve(ctx, "ALICE")
		require.NoError(t, err)
		assert.Equal(t, first.ID, third.ID)

		assert.Len(t, users.byName, 1)
	})

	t.Run("blank name is rejected without creating anyone", func(t *testing.T) {
		before := len(users.byName)
		_, err := uc.Resolve(ctx, "   ")
		require.Error(t, err)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
		assert.Len(t, users.byName, before)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessionRepo()
	uc := New(newFakeUserRepo(), sessions, nil, time.Hour)

	user, session, err := uc.Login(ctx, "Bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
	assert.Equal(t, user.ID, session.UserID)
	assert.False(t, session.IsExpired(time.Now()))
	assert.Contains(t, sessions.sessions, session.ID)
}

func TestGetSession(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessionRepo()
	uc := New(newFakeUserRepo(), sessions, nil, time.Hour)

	t.Run("live session", func(t *testing.T) {
		_, session, err := uc.Login(ctx, "Carol")
		require.NoError(t, err)

		got, err := uc.GetSession(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, session.UserID, got.UserID)
	})

	t.Run("expired session is evicted", func(t *testing.T) {
		stale := &domain.Session{
			ID:        uuid.NewString(),
			UserID:    "user-1",
			ExpiresAt: time.Now().Add(-time.Minute),
		}
		require.NoError(t, sessions.Save(ctx, stale))

		_, err := uc.GetSession(ctx, stale.ID)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
		assert.NotContains(t, sessions.sessions, stale.ID)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessionRepo()
	uc := New(newFakeUserRepo(), sessions, nil, time.Hour)

	_, session, err := uc.Login(ctx, "Dave")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, session.ID))
	_, err = uc.GetSession(ctx, session.ID)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}
