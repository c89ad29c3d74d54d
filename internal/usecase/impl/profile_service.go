package impl

import (
	"context"
	"log/slog"

	deliverycontext "dashmonkey/internal/delivery/context"
	domainerrors "dashmonkey/internal/domain/errors"
	"dashmonkey/internal/domain/repository"
	"dashmonkey/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the authenticated user's own profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile lookup failed")
		}

		srv.log(ctx).Error("Failed to load profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load user for profile")
	}

	activeSessions, err := srv.sessionRepo.CountActiveByUsername(ctx, user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count sessions for profile")
	}

	return &usecase.ProfileOutput{
		Username:       user.Username,
		Ingress:        user.Ingress.String(),
		Discord:        user.Discord,
		Telegram:       user.Telegram,
		CreatedAt:      user.CreatedAt,
		ActiveSessions: activeSessions,
	}, nil
}
