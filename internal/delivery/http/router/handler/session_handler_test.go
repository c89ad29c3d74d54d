package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dashmonkey/config"
	"dashmonkey/internal/delivery/http/middleware"
	"dashmonkey/internal/domain/entity"
	"dashmonkey/internal/infra/auth"
	mockUsecase "dashmonkey/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) (*middleware.AuthMiddleware, string) {
	t.Helper()

	tokenService, err := auth.NewJWTService(&config.Config{
		Auth: &config.AuthConfig{
			Secret:          "test_secret_key_very_long_for_testing",
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: time.Hour,
		},
	})
	require.NoError(t, err)

	token, err := tokenService.MintAccessToken(&entity.User{ID: uuid.New(), Username: "alice"}, entity.IngressWeb)
	require.NoError(t, err)

	return middleware.NewAuthMiddleware(tokenService), token
}

func doAuthed(e *echo.Echo, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestSessionHandler_ListSessions(t *testing.T) {
	e := newTestEcho()
	authMiddleware, token := newTestTokenService(t)
	uc := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(uc, discardLogger())
	e.GET("/auth/sessions", h.ListSessions, authMiddleware.Authenticate)

	uc.EXPECT().ListSessions(mock.Anything, "alice").Return([]*entity.Session{
		{Username: "alice", TokenHash: "secret-hash", ExpiresAt: time.Now().Add(time.Hour)},
	}, nil)

	rec := doAuthed(e, http.MethodGet, "/auth/sessions", token)

	require.Equal(t, http.StatusOK, rec.Code)
	// Token hashes must never reach the wire.
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestSessionHandler_ListSessions_NoToken(t *testing.T) {
	e := newTestEcho()
	authMiddleware, _ := newTestTokenService(t)
	uc := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(uc, discardLogger())
	e.GET("/auth/sessions", h.ListSessions, authMiddleware.Authenticate)

	rec := doAuthed(e, http.MethodGet, "/auth/sessions", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	res := decodeResponse(t, rec)
	assert.Equal(t, "INVALID_ACCESS_TOKEN", res.Error.Code)
}

func TestSessionHandler_ListSessions_GarbageToken(t *testing.T) {
	e := newTestEcho()
	authMiddleware, _ := newTestTokenService(t)
	uc := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(uc, discardLogger())
	e.GET("/auth/sessions", h.ListSessions, authMiddleware.Authenticate)

	rec := doAuthed(e, http.MethodGet, "/auth/sessions", "not-a-jwt")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionHandler_LogoutAll(t *testing.T) {
	e := newTestEcho()
	authMiddleware, token := newTestTokenService(t)
	uc := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(uc, discardLogger())
	e.POST("/auth/logout-all", h.LogoutAll, authMiddleware.Authenticate)

	uc.EXPECT().LogoutAll(mock.Anything, "alice").Return(nil)

	rec := doAuthed(e, http.MethodPost, "/auth/logout-all", token)

	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeResponse(t, rec)
	assert.True(t, res.Success)
}
