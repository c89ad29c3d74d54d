// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "dashmonkey/internal/delivery/context"
	"dashmonkey/internal/domain/entity"
	domainerrors "dashmonkey/internal/domain/errors"
	"dashmonkey/internal/domain/repository"
	"dashmonkey/internal/domain/service"
	"dashmonkey/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	SessionRepo  repository.SessionRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account and issues its first token pair in one
// transaction, so a failed session insert never leaves a half-registered user.
// Uniqueness is enforced solely by the username unique constraint.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username), slog.String("ingress", input.Ingress.String()))

	// bcrypt is CPU-bound, keep it outside the transaction.
	hashedCredential, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash credential during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash credential")
	}

	refreshToken, err := srv.tokenService.MintRefreshToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint refresh token during registration")
	}

	output := &usecase.RegisterOutput{}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		sessionRepo := repoFactory.SessionRepo()

		newUser := &entity.User{
			Username:     input.Username,
			PasswordHash: hashedCredential,
			Ingress:      input.Ingress,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrDuplicateUsername) {
				return errors.Wrap(domainerrors.ErrDuplicateUsername, "registration failed")
			}

			return errors.Wrap(err, "failed to create user during registration")
		}

		accessToken, err := srv.tokenService.MintAccessToken(newUser, input.Ingress)
		if err != nil {
			return errors.Wrap(err, "failed to mint access token during registration")
		}

		if err := sessionRepo.Create(ctx, srv.buildSession(newUser.Username, refreshToken)); err != nil {
			return errors.Wrap(err, "failed to create session during registration")
		}

		output.User = newUser
		output.Tokens = usecase.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.String("username", input.Username), slog.Any("userID", output.User.ID))

	return output, nil
}

// Login verifies the credential and opens a new session. Prior sessions for
// the same user stay untouched, so each device holds its own refresh token.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

			// Same failure as a wrong credential. The caller must not be
			// able to tell whether the account exists.
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	tokens, err := srv.issueTokenPair(ctx, user, input.Ingress)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Login completed", slog.String("username", input.Username))

	return &usecase.LoginOutput{User: user, Tokens: *tokens}, nil
}

// Refresh redeems a refresh token for a new pair. The lookup, the insert of
// the successor session and the conditional revocation of the old one run in
// a single transaction: of two concurrent redemptions of the same token,
// exactly one commits and the other surfaces an invalid-token failure.
func (srv *authService) Refresh(ctx context.Context, input usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	tokenHash := srv.tokenService.HashRefreshToken(input.RefreshToken)

	newRefreshToken, err := srv.tokenService.MintRefreshToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint refresh token during refresh")
	}

	output := &usecase.RefreshOutput{}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		sessionRepo := repoFactory.SessionRepo()

		session, err := sessionRepo.FindActiveByTokenHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
				return errors.Wrap(domainerrors.ErrInvalidRefreshToken, "refresh failed")
			}

			return errors.Wrap(err, "failed to load session for refresh")
		}

		user, err := userRepo.FindByUsername(ctx, session.Username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// Orphaned session: the account is gone. Terminal for this token.
				return errors.Wrap(domainerrors.ErrUserNotFound, "refresh failed")
			}

			return errors.Wrap(err, "failed to load user for refresh")
		}

		// Conditional revocation is the double-spend guard. A concurrent
		// redemption that already flipped the flag leaves zero rows here.
		if err := sessionRepo.Revoke(ctx, tokenHash); err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				srv.log(ctx).Warn("Refresh token replay detected", slog.String("username", session.Username))

				return errors.Wrap(domainerrors.ErrInvalidRefreshToken, "refresh failed")
			}

			return errors.Wrap(err, "failed to revoke session during refresh")
		}

		accessToken, err := srv.tokenService.MintAccessToken(user, input.Ingress)
		if err != nil {
			return errors.Wrap(err, "failed to mint access token during refresh")
		}

		if err := sessionRepo.Create(ctx, srv.buildSession(user.Username, newRefreshToken)); err != nil {
			return errors.Wrap(err, "failed to create session during refresh")
		}

		output.Tokens = usecase.TokenPair{AccessToken: accessToken, RefreshToken: newRefreshToken}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// Logout revokes the session behind the refresh token. An unknown or
// already-revoked token is treated as success so repeated logouts and
// logout-after-refresh are safe for clients.
func (srv *authService) Logout(ctx context.Context, input usecase.LogoutInput) error {
	tokenHash := srv.tokenService.HashRefreshToken(input.RefreshToken)

	if err := srv.sessionRepo.Revoke(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			srv.log(ctx).Debug("Logout for unknown or already-revoked token")

			return nil
		}

		srv.log(ctx).Error("Logout failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke session during logout")
	}

	srv.log(ctx).Debug("Logout completed")

	return nil
}

// issueTokenPair mints a fresh pair and persists the refresh side as a session.
func (srv *authService) issueTokenPair(ctx context.Context, user *entity.User, ingress entity.Ingress) (*usecase.TokenPair, error) {
	accessToken, err := srv.tokenService.MintAccessToken(user, ingress)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint access token")
	}

	refreshToken, err := srv.tokenService.MintRefreshToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint refresh token")
	}

	if err := srv.sessionRepo.Create(ctx, srv.buildSession(user.Username, refreshToken)); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	return &usecase.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// buildSession derives the stored session row from a freshly minted refresh token.
func (srv *authService) buildSession(username, refreshToken string) *entity.Session {
	return &entity.Session{
		Username:  username,
		TokenHash: srv.tokenService.HashRefreshToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenTTL()),
	}
}
