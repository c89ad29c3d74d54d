// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "dashmonkey/internal/delivery/context"
	"dashmonkey/internal/domain/entity"
	"dashmonkey/internal/domain/repository"
	"dashmonkey/internal/usecase"

	"github.com/pkg/errors"
)

// expiredSessionRetention is how long an expired row may linger before the
// cleanup pass removes it physically.
const expiredSessionRetention = 24 * time.Hour

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSessions retrieves all active sessions for a user.
func (srv *sessionService) ListSessions(ctx context.Context, username string) ([]*entity.Session, error) {
	srv.log(ctx).Debug("Listing active sessions", slog.String("username", username))

	var sessions []*entity.Session
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		sessions, err = repoFactory.SessionRepo().ListActiveByUsername(ctx, username)
		if err != nil {
			return errors.Wrap(err, "failed to list sessions")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list active sessions", slog.String("username", username), slog.Any("error", err))

		return nil, err
	}

	return sessions, nil
}

// LogoutAll revokes every active session for a user. Revoking none is success.
func (srv *sessionService) LogoutAll(ctx context.Context, username string) error {
	srv.log(ctx).Info("Revoking all sessions", slog.String("username", username))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.SessionRepo().RevokeAllForUsername(ctx, username); err != nil {
			return errors.Wrap(err, "failed to revoke sessions")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to revoke all sessions", slog.String("username", username), slog.Any("error", err))

		return err
	}

	return nil
}

// CleanupExpiredSessions removes rows expired longer than the retention
// window. Recently expired rows stay behind so refresh replays keep failing
// with the same answer they would get from a revoked row.
func (srv *sessionService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-expiredSessionRetention)

	var removed int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		removed, err = repoFactory.SessionRepo().DeleteExpiredBefore(ctx, cutoff)
		if err != nil {
			return errors.Wrap(err, "failed to delete expired sessions")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to cleanup expired sessions", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to cleanup expired sessions")
	}

	srv.log(ctx).Info("Cleaned up expired sessions", slog.Int64("removed", removed))

	return removed, nil
}
