package handler

import (
	"log/slog"
	"net/http"
	"time"

	"dashmonkey/internal/delivery/http/middleware"
	"dashmonkey/internal/delivery/http/response"
	domainerrors "dashmonkey/internal/domain/errors"
	"dashmonkey/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type sessionResponse struct {
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionHandler exposes session management for the authenticated user.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

// usernameFromContext reads the username set by the auth middleware.
func usernameFromContext(c echo.Context) (string, error) {
	username, ok := c.Get(middleware.ContextKeyUsername).(string)
	if !ok || username == "" {
		return "", domainerrors.ErrInvalidAccessToken.WithDetails("username missing from token")
	}

	return username, nil
}

// ListSessions returns the caller's active sessions. Token hashes never leave
// the storage layer.
func (h *SessionHandler) ListSessions(c echo.Context) error {
	username, err := usernameFromContext(c)
	if err != nil {
		return err
	}

	sessions, err := h.uc.ListSessions(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]sessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, sessionResponse{
			CreatedAt: session.CreatedAt,
			ExpiresAt: session.ExpiresAt,
		})
	}

	return response.Success(c, http.StatusOK, out, "Sessions retrieved successfully")
}

// LogoutAll revokes every session of the caller.
func (h *SessionHandler) LogoutAll(c echo.Context) error {
	username, err := usernameFromContext(c)
	if err != nil {
		return err
	}

	if err := h.uc.LogoutAll(c.Request().Context(), username); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "All sessions revoked"}, "Logout successful")
}
