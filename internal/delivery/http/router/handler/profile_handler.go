package handler

import (
	"log/slog"
	"net/http"
	"time"

	"dashmonkey/internal/delivery/http/middleware"
	"dashmonkey/internal/delivery/http/response"
	domainerrors "dashmonkey/internal/domain/errors"
	"dashmonkey/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type profileResponse struct {
	Username       string `json:"username"`
	Ingress        string `json:"ingress"`
	Discord        string `json:"discord,omitempty"`
	Telegram       string `json:"telegram,omitempty"`
	CreatedAt      string `json:"createdAt"`
	ActiveSessions int    `json:"activeSessions"`
}

// ProfileHandler exposes the authenticated user's profile.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile returns the caller's own profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return domainerrors.ErrInvalidAccessToken.WithDetails("user ID missing from token")
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profileResponse{
		Username:       profile.Username,
		Ingress:        profile.Ingress,
		Discord:        profile.Discord,
		Telegram:       profile.Telegram,
		CreatedAt:      profile.CreatedAt.UTC().Format(time.RFC3339),
		ActiveSessions: profile.ActiveSessions,
	}, "Profile retrieved successfully")
}
