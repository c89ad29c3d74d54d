// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"dashmonkey/internal/domain/entity"
	domainerrors "dashmonkey/internal/domain/errors"
	"dashmonkey/internal/domain/repository"
	"dashmonkey/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the domain.SessionRepository interface using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a new session row for a freshly minted refresh token.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// A token-hash collision means the same token was persisted twice.
			return errors.Wrap(err, "session token hash already exists")
		}

		return domainerrors.NewStorageError(err, "failed to create session")
	}

	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindActiveByTokenHash retrieves the unrevoked session matching a token hash.
// Revocation state is filtered in SQL; expiry is checked here so the caller
// can tell an expired session from a missing one.
func (repo *sessionRepository) FindActiveByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	var sessionM model.SessionModel
	err := repo.db.WithContext(ctx).
		Where("token_hash = ? AND revoked = ?", tokenHash, false).
		First(&sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, domainerrors.NewStorageError(err, "failed to find session by token hash")
	}

	session := toSessionDomain(&sessionM)
	if !session.ExpiresAt.After(time.Now()) {
		return nil, repository.ErrSessionExpired
	}

	return session, nil
}

// Revoke flips the revoked flag on the unrevoked session matching the hash.
// The WHERE clause includes revoked = false so that two concurrent
// redemptions of one token serialize on the row lock and only the first one
// affects a row; the loser sees zero rows and gets ErrSessionNotFound.
func (repo *sessionRepository) Revoke(ctx context.Context, tokenHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("token_hash = ? AND revoked = ?", tokenHash, false).
		Update("revoked", true)
	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to revoke session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// RevokeAllForUsername revokes every live session belonging to a user.
// Revoking zero rows is not an error.
func (repo *sessionRepository) RevokeAllForUsername(ctx context.Context, username string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("username = ? AND revoked = ?", username, false).
		Update("revoked", true).Error
	if err != nil {
		return domainerrors.NewStorageError(err, "failed to revoke sessions for user")
	}

	return nil
}

// ListActiveByUsername retrieves all valid sessions for a user, newest first.
func (repo *sessionRepository) ListActiveByUsername(ctx context.Context, username string) ([]*entity.Session, error) {
	var sessionMs []model.SessionModel
	err := repo.db.WithContext(ctx).
		Where("username = ? AND revoked = ? AND expires_at > ?", username, false, time.Now()).
		Order("created_at DESC").
		Find(&sessionMs).Error
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to list sessions for user")
	}

	sessions := make([]*entity.Session, 0, len(sessionMs))
	for i := range sessionMs {
		sessions = append(sessions, toSessionDomain(&sessionMs[i]))
	}

	return sessions, nil
}

// CountActiveByUsername returns the number of valid sessions for a user.
func (repo *sessionRepository) CountActiveByUsername(ctx context.Context, username string) (int, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("username = ? AND revoked = ? AND expires_at > ?", username, false, time.Now()).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewStorageError(err, "failed to count sessions for user")
	}

	return int(count), nil
}

// DeleteExpiredBefore physically removes sessions whose expiry predates the
// cutoff. This is the only physical deletion path; live revocation is always
// the soft revoked flag.
func (repo *sessionRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", cutoff).
		Delete(&model.SessionModel{})
	if result.Error != nil {
		return 0, domainerrors.NewStorageError(result.Error, "failed to delete expired sessions")
	}

	return result.RowsAffected, nil
}

// toSessionDomain maps a persistence model to a pure domain entity.
func toSessionDomain(m *model.SessionModel) *entity.Session {
	return &entity.Session{
		Username:  m.Username,
		TokenHash: m.TokenHash,
		ExpiresAt: m.ExpiresAt,
		Revoked:   m.Revoked,
		CreatedAt: m.CreatedAt,
	}
}

// fromSessionDomain maps a domain entity to a persistence model.
func fromSessionDomain(s *entity.Session) *model.SessionModel {
	return &model.SessionModel{
		Username:  s.Username,
		TokenHash: s.TokenHash,
		ExpiresAt: s.ExpiresAt,
		Revoked:   s.Revoked,
		CreatedAt: s.CreatedAt,
	}
}
