package impl

import (
	"context"
	"testing"
	"time"

	"dashmonkey/internal/domain/entity"
	domainerrors "dashmonkey/internal/domain/errors"
	"dashmonkey/internal/domain/repository"
	mockRepo "dashmonkey/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetProfile(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	service := NewProfileService(userRepo, sessionRepo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	created := time.Now().Add(-24 * time.Hour)
	user := &entity.User{
		ID:        userID,
		Username:  "alice",
		Ingress:   "mobile",
		Discord:   "alice#1234",
		Telegram:  "@alice",
		CreatedAt: created,
	}

	userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	sessionRepo.EXPECT().CountActiveByUsername(ctx, "alice").Return(2, nil)

	profile, err := service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "mobile", profile.Ingress)
	assert.Equal(t, "alice#1234", profile.Discord)
	assert.Equal(t, "@alice", profile.Telegram)
	assert.Equal(t, created, profile.CreatedAt)
	assert.Equal(t, 2, profile.ActiveSessions)
}

func TestProfileService_GetProfile_UserNotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	service := NewProfileService(userRepo, sessionRepo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	profile, err := service.GetProfile(ctx, userID)

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_GetProfile_CountFailure(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	service := NewProfileService(userRepo, sessionRepo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice"}

	userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	sessionRepo.EXPECT().CountActiveByUsername(ctx, "alice").Return(0, errors.New("database connection failed"))

	_, err := service.GetProfile(ctx, userID)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count sessions for profile")
}
