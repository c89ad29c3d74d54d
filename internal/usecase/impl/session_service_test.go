package impl

import (
	"context"
	"testing"
	"time"

	"dashmonkey/internal/domain/entity"
	"dashmonkey/internal/domain/repository"
	mockRepo "dashmonkey/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceMocks struct {
	service     *sessionService
	factory     *mockRepo.MockRepositoryFactory
	sessionRepo *mockRepo.MockSessionRepository
}

func newSessionServiceMocks(t *testing.T) *sessionServiceMocks {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)

	service := NewSessionService(&mockTxManager{factory: factory}, newDiscardLogger()).(*sessionService)

	return &sessionServiceMocks{
		service:     service,
		factory:     factory,
		sessionRepo: sessionRepo,
	}
}

func TestSessionService_ListSessions(t *testing.T) {
	m := newSessionServiceMocks(t)
	ctx := context.Background()

	want := []*entity.Session{
		{Username: "alice", TokenHash: "h1", ExpiresAt: time.Now().Add(time.Hour)},
		{Username: "alice", TokenHash: "h2", ExpiresAt: time.Now().Add(2 * time.Hour)},
	}

	m.factory.EXPECT().SessionRepo().Return(m.sessionRepo)
	m.sessionRepo.EXPECT().ListActiveByUsername(ctx, "alice").Return(want, nil)

	sessions, err := m.service.ListSessions(ctx, "alice")

	require.NoError(t, err)
	assert.Equal(t, want, sessions)
}

func TestSessionService_ListSessions_Error(t *testing.T) {
	m := newSessionServiceMocks(t)
	ctx := context.Background()

	m.factory.EXPECT().SessionRepo().Return(m.sessionRepo)
	m.sessionRepo.EXPECT().ListActiveByUsername(ctx, "alice").Return(nil, errors.New("database connection failed"))

	sessions, err := m.service.ListSessions(ctx, "alice")

	assert.Error(t, err)
	assert.Nil(t, sessions)
	assert.Contains(t, err.Error(), "failed to list sessions")
}

func TestSessionService_LogoutAll(t *testing.T) {
	m := newSessionServiceMocks(t)
	ctx := context.Background()

	m.factory.EXPECT().SessionRepo().Return(m.sessionRepo)
	m.sessionRepo.EXPECT().RevokeAllForUsername(ctx, "alice").Return(nil)

	assert.NoError(t, m.service.LogoutAll(ctx, "alice"))
}

func TestSessionService_LogoutAll_Error(t *testing.T) {
	m := newSessionServiceMocks(t)
	ctx := context.Background()

	m.factory.EXPECT().SessionRepo().Return(m.sessionRepo)
	m.sessionRepo.EXPECT().RevokeAllForUsername(ctx, "alice").Return(errors.New("database connection failed"))

	err := m.service.LogoutAll(ctx, "alice")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to revoke sessions")
}

func TestSessionService_CleanupExpiredSessions(t *testing.T) {
	m := newSessionServiceMocks(t)
	ctx := context.Background()

	m.factory.EXPECT().SessionRepo().Return(m.sessionRepo)
	m.sessionRepo.EXPECT().DeleteExpiredBefore(ctx, mock.AnythingOfType("time.Time")).
		RunAndReturn(func(_ context.Context, cutoff time.Time) (int64, error) {
			// The cutoff keeps a retention window behind now.
			assert.True(t, cutoff.Before(time.Now()))

			return 3, nil
		})

	removed, err := m.service.CleanupExpiredSessions(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestSessionService_CleanupExpiredSessions_Error(t *testing.T) {
	m := newSessionServiceMocks(t)
	ctx := context.Background()

	m.factory.EXPECT().SessionRepo().Return(m.sessionRepo)
	m.sessionRepo.EXPECT().DeleteExpiredBefore(ctx, mock.AnythingOfType("time.Time")).
		Return(int64(0), errors.New("database connection failed"))

	_, err := m.service.CleanupExpiredSessions(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to cleanup expired sessions")
}

// The fake-backed fixture exercises cleanup against real retention arithmetic.
func TestSessionService_CleanupExpiredSessions_Retention(t *testing.T) {
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	service := NewSessionService(&fakeTxManager{userRepo: userRepo, sessionRepo: sessionRepo}, newDiscardLogger())

	ctx := context.Background()
	longDead := &entity.Session{Username: "alice", TokenHash: "old", ExpiresAt: time.Now().Add(-48 * time.Hour)}
	justExpired := &entity.Session{Username: "alice", TokenHash: "recent", ExpiresAt: time.Now().Add(-time.Hour)}
	live := &entity.Session{Username: "alice", TokenHash: "live", ExpiresAt: time.Now().Add(time.Hour)}
	for _, s := range []*entity.Session{longDead, justExpired, live} {
		require.NoError(t, sessionRepo.Create(ctx, s))
	}

	removed, err := service.CleanupExpiredSessions(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	// Recently expired rows stay; a replayed token keeps failing the same way.
	_, err = sessionRepo.FindActiveByTokenHash(ctx, "recent")
	assert.ErrorIs(t, err, repository.ErrSessionExpired)
}
