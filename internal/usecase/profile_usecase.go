package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProfileOutput is the authenticated user's profile view.
type ProfileOutput struct {
	Username       string
	Ingress        string
	Discord        string
	Telegram       string
	CreatedAt      time.Time
	ActiveSessions int
}

// ProfileUsecase exposes the authenticated user's own profile.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)
}
