package usecase

import (
	"context"

	"dashmonkey/internal/domain/entity"
)

// SessionUsecase defines session management operations for an authenticated user.
type SessionUsecase interface {
	// ListSessions retrieves the user's active sessions, newest first.
	ListSessions(ctx context.Context, username string) ([]*entity.Session, error)

	// LogoutAll revokes every active session for the user.
	LogoutAll(ctx context.Context, username string) error

	// CleanupExpiredSessions physically removes sessions that have been
	// expired longer than the retention window, returning the removed count.
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}
