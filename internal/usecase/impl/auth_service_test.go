package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"dashmonkey/internal/domain/entity"
	domainerrors "dashmonkey/internal/domain/errors"
	"dashmonkey/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCredential = "5e884898da28047151d0e56f8dc62927"

func registerTestUser(t *testing.T, fx *authServiceFixture, username string) *usecase.RegisterOutput {
	t.Helper()

	output, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Username: username,
		Password: testCredential,
		Ingress:  entity.IngressWeb,
	})
	require.NoError(t, err)

	return output
}

func TestAuthService_Register(t *testing.T) {
	fx := newAuthServiceFixture(t)

	output := registerTestUser(t, fx, "alice")

	assert.Equal(t, "alice", output.User.Username)
	assert.NotEqual(t, testCredential, output.User.PasswordHash, "credential must be hashed at rest")
	assert.NotEmpty(t, output.Tokens.AccessToken)
	assert.NotEmpty(t, output.Tokens.RefreshToken)

	// Registration opens a session immediately.
	count, err := fx.sessionRepo.CountActiveByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	fx := newAuthServiceFixture(t)
	registerTestUser(t, fx, "alice")

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Username: "alice",
		Password: testCredential,
		Ingress:  entity.IngressWeb,
	})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateUsername)
}

func TestAuthService_Login(t *testing.T) {
	fx := newAuthServiceFixture(t)
	registerTestUser(t, fx, "alice")

	output, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Username: "alice",
		Password: testCredential,
		Ingress:  entity.IngressMobile,
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", output.User.Username)
	assert.NotEmpty(t, output.Tokens.AccessToken)
	assert.NotEmpty(t, output.Tokens.RefreshToken)

	// The registration session survives: multi-device, one session each.
	count, err := fx.sessionRepo.CountActiveByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	fx := newAuthServiceFixture(t)
	registerTestUser(t, fx, "alice")

	_, wrongPasswordErr := fx.service.Login(context.Background(), usecase.LoginInput{
		Username: "alice",
		Password: "0cc175b9c0f1b6a831c399e269772661",
		Ingress:  entity.IngressWeb,
	})
	_, unknownUserErr := fx.service.Login(context.Background(), usecase.LoginInput{
		Username: "nobody",
		Password: testCredential,
		Ingress:  entity.IngressWeb,
	})

	assert.ErrorIs(t, wrongPasswordErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUserErr, domainerrors.ErrInvalidCredentials)

	var wrongPasswordApp domainerrors.AppError
	var unknownUserApp domainerrors.AppError
	require.True(t, errors.As(wrongPasswordErr, &wrongPasswordApp))
	require.True(t, errors.As(unknownUserErr, &unknownUserApp))

	// Same code, same message: the response must not leak which check failed.
	assert.Equal(t, wrongPasswordApp.ErrorCode(), unknownUserApp.ErrorCode())
	assert.Equal(t, wrongPasswordApp.Message(), unknownUserApp.Message())
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	fx := newAuthServiceFixture(t)
	output := registerTestUser(t, fx, "alice")

	refreshed, err := fx.service.Refresh(context.Background(), usecase.RefreshInput{
		RefreshToken: output.Tokens.RefreshToken,
		Ingress:      entity.IngressWeb,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, refreshed.Tokens.AccessToken)
	assert.NotEmpty(t, refreshed.Tokens.RefreshToken)
	assert.NotEqual(t, output.Tokens.RefreshToken, refreshed.Tokens.RefreshToken)

	// One live session: the old token was revoked, the new one created.
	count, err := fx.sessionRepo.CountActiveByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAuthService_Refresh_SingleUse(t *testing.T) {
	fx := newAuthServiceFixture(t)
	output := registerTestUser(t, fx, "alice")

	_, err := fx.service.Refresh(context.Background(), usecase.RefreshInput{
		RefreshToken: output.Tokens.RefreshToken,
		Ingress:      entity.IngressWeb,
	})
	require.NoError(t, err)

	// Replaying the consumed token fails, and the replay does not disturb
	// the successor session.
	_, err = fx.service.Refresh(context.Background(), usecase.RefreshInput{
		RefreshToken: output.Tokens.RefreshToken,
		Ingress:      entity.IngressWeb,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)

	count, err := fx.sessionRepo.CountActiveByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAuthService_Refresh_UnknownToken(t *testing.T) {
	fx := newAuthServiceFixture(t)

	_, err := fx.service.Refresh(context.Background(), usecase.RefreshInput{
		RefreshToken: "0000000000000000000000000000000000000000000000000000000000000000",
		Ingress:      entity.IngressWeb,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
}

func TestAuthService_Refresh_ExpiredSession(t *testing.T) {
	fx := newAuthServiceFixture(t)
	output := registerTestUser(t, fx, "alice")

	// A session past its expiry behaves exactly like a revoked one.
	fx.sessionRepo.mu.Lock()
	for _, session := range fx.sessionRepo.sessions {
		session.ExpiresAt = time.Now().Add(-time.Minute)
	}
	fx.sessionRepo.mu.Unlock()

	_, err := fx.service.Refresh(context.Background(), usecase.RefreshInput{
		RefreshToken: output.Tokens.RefreshToken,
		Ingress:      entity.IngressWeb,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
}

func TestAuthService_Refresh_ConcurrentRedemption(t *testing.T) {
	fx := newAuthServiceFixture(t)
	output := registerTestUser(t, fx, "alice")

	const redeemers = 8

	var wg sync.WaitGroup
	results := make([]error, redeemers)
	for i := range redeemers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = fx.service.Refresh(context.Background(), usecase.RefreshInput{
				RefreshToken: output.Tokens.RefreshToken,
				Ingress:      entity.IngressWeb,
			})
		}()
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
		}
	}
	assert.Equal(t, 1, winners, "exactly one concurrent redemption may succeed")
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	fx := newAuthServiceFixture(t)
	output := registerTestUser(t, fx, "alice")

	require.NoError(t, fx.service.Logout(context.Background(), usecase.LogoutInput{
		RefreshToken: output.Tokens.RefreshToken,
	}))

	// Second logout of the same token and logout of a never-issued token
	// both succeed.
	assert.NoError(t, fx.service.Logout(context.Background(), usecase.LogoutInput{
		RefreshToken: output.Tokens.RefreshToken,
	}))
	assert.NoError(t, fx.service.Logout(context.Background(), usecase.LogoutInput{
		RefreshToken: "never-issued",
	}))
}

func TestAuthService_Logout_EndsSession(t *testing.T) {
	fx := newAuthServiceFixture(t)
	output := registerTestUser(t, fx, "alice")

	require.NoError(t, fx.service.Logout(context.Background(), usecase.LogoutInput{
		RefreshToken: output.Tokens.RefreshToken,
	}))

	_, err := fx.service.Refresh(context.Background(), usecase.RefreshInput{
		RefreshToken: output.Tokens.RefreshToken,
		Ingress:      entity.IngressWeb,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
}

func TestAuthService_FullLifecycle(t *testing.T) {
	fx := newAuthServiceFixture(t)
	ctx := context.Background()

	registered := registerTestUser(t, fx, "alice")

	loggedIn, err := fx.service.Login(ctx, usecase.LoginInput{
		Username: "alice",
		Password: testCredential,
		Ingress:  entity.IngressWeb,
	})
	require.NoError(t, err)

	refreshed, err := fx.service.Refresh(ctx, usecase.RefreshInput{
		RefreshToken: loggedIn.Tokens.RefreshToken,
		Ingress:      entity.IngressWeb,
	})
	require.NoError(t, err)

	// Replay of the consumed login token fails.
	_, err = fx.service.Refresh(ctx, usecase.RefreshInput{
		RefreshToken: loggedIn.Tokens.RefreshToken,
		Ingress:      entity.IngressWeb,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)

	require.NoError(t, fx.service.Logout(ctx, usecase.LogoutInput{
		RefreshToken: refreshed.Tokens.RefreshToken,
	}))

	// The logged-out token can no longer be refreshed.
	_, err = fx.service.Refresh(ctx, usecase.RefreshInput{
		RefreshToken: refreshed.Tokens.RefreshToken,
		Ingress:      entity.IngressWeb,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)

	// The registration-time session was never touched and still works.
	_, err = fx.service.Refresh(ctx, usecase.RefreshInput{
		RefreshToken: registered.Tokens.RefreshToken,
		Ingress:      entity.IngressWeb,
	})
	assert.NoError(t, err)
}
