package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"dashmonkey/config"
	"dashmonkey/internal/domain/entity"
	"dashmonkey/internal/domain/repository"
	"dashmonkey/internal/infra/auth"
	"dashmonkey/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAuthConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			Secret:          "test_secret_key_very_long_for_testing",
			AccessTokenTTL:  3 * time.Hour,
			RefreshTokenTTL: 168 * time.Hour,
			BcryptCost:      4,
		},
	}
}

// fakeUserRepo is an in-memory UserRepository keyed by username.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return repository.ErrDuplicateUsername
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	stored := *user
	r.users[user.Username] = &stored

	return nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	found := *user

	return &found, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == id {
			found := *user

			return &found, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// fakeSessionRepo is an in-memory SessionRepository keyed by token hash.
// Revoke is conditional on the revoked flag under a single lock, matching the
// at-most-once semantics of the SQL implementation.
type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (r *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session.CreatedAt = time.Now()
	stored := *session
	r.sessions[session.TokenHash] = &stored

	return nil
}

func (r *fakeSessionRepo) FindActiveByTokenHash(_ context.Context, tokenHash string) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[tokenHash]
	if !ok || session.Revoked {
		return nil, repository.ErrSessionNotFound
	}
	if !session.ExpiresAt.After(time.Now()) {
		return nil, repository.ErrSessionExpired
	}
	found := *session

	return &found, nil
}

func (r *fakeSessionRepo) Revoke(_ context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[tokenHash]
	if !ok || session.Revoked {
		return repository.ErrSessionNotFound
	}
	session.Revoked = true

	return nil
}

func (r *fakeSessionRepo) RevokeAllForUsername(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, session := range r.sessions {
		if session.Username == username {
			session.Revoked = true
		}
	}

	return nil
}

func (r *fakeSessionRepo) ListActiveByUsername(_ context.Context, username string) ([]*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Session
	now := time.Now()
	for _, session := range r.sessions {
		if session.Username == username && !session.Revoked && session.ExpiresAt.After(now) {
			found := *session
			out = append(out, &found)
		}
	}

	return out, nil
}

func (r *fakeSessionRepo) CountActiveByUsername(ctx context.Context, username string) (int, error) {
	sessions, err := r.ListActiveByUsername(ctx, username)
	if err != nil {
		return 0, err
	}

	return len(sessions), nil
}

func (r *fakeSessionRepo) DeleteExpiredBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for hash, session := range r.sessions {
		if session.ExpiresAt.Before(cutoff) {
			delete(r.sessions, hash)
			removed++
		}
	}

	return removed, nil
}

// fakeTxManager hands the callback a factory over the shared fakes. The fakes
// guard their own state, so no transactional isolation is simulated.
type fakeTxManager struct {
	userRepo    *fakeUserRepo
	sessionRepo *fakeSessionRepo
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m *fakeTxManager) UserRepo() repository.UserRepository {
	return m.userRepo
}

func (m *fakeTxManager) SessionRepo() repository.SessionRepository {
	return m.sessionRepo
}

// authServiceFixture wires an authService over in-memory stores with real
// bcrypt and JWT implementations.
type authServiceFixture struct {
	service     usecase.AuthUsecase
	userRepo    *fakeUserRepo
	sessionRepo *fakeSessionRepo
}

func newAuthServiceFixture(t require.TestingT) *authServiceFixture {
	cfg := newTestAuthConfig()

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()

	service := NewAuthService(AuthServiceParams{
		TxManager:    &fakeTxManager{userRepo: userRepo, sessionRepo: sessionRepo},
		UserRepo:     userRepo,
		SessionRepo:  sessionRepo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return &authServiceFixture{
		service:     service,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}
