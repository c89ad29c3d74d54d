// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"dashmonkey/internal/domain/entity"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when no live session matches a token hash.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a matching session exists but its expiry has passed.
	ErrSessionExpired = errors.New("session has expired")
)

// SessionRepository is the session store: it owns the persistence of hashed
// refresh tokens and their revocation state. Sessions are soft-deleted only;
// physical deletion happens exclusively through DeleteExpiredBefore.
type SessionRepository interface {
	// Create persists a new session row for a freshly minted refresh token.
	Create(ctx context.Context, session *entity.Session) error

	// FindActiveByTokenHash retrieves the unrevoked session matching a token
	// hash. Returns ErrSessionNotFound when no unrevoked row matches and
	// ErrSessionExpired when the matching row's expiry has passed.
	FindActiveByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// Revoke flips the revoked flag on the unrevoked session matching the
	// hash. Returns ErrSessionNotFound when no unrevoked row matched: either
	// the token was never issued, or a concurrent redemption already consumed
	// it. The update must be conditional on revoked = false so that two
	// concurrent redemptions of one token can never both succeed.
	Revoke(ctx context.Context, tokenHash string) error

	// RevokeAllForUsername revokes every live session belonging to a user.
	RevokeAllForUsername(ctx context.Context, username string) error

	// ListActiveByUsername retrieves all valid (unrevoked, unexpired)
	// sessions for a user, newest first.
	ListActiveByUsername(ctx context.Context, username string) ([]*entity.Session, error)

	// CountActiveByUsername returns the number of valid sessions for a user.
	CountActiveByUsername(ctx context.Context, username string) (int, error)

	// DeleteExpiredBefore physically removes sessions whose expiry predates
	// cutoff, returning the number of rows removed. Housekeeping only.
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
