package handler

import (
	"net/http"
	"testing"
	"time"

	domainerrors "dashmonkey/internal/domain/errors"
	mockUsecase "dashmonkey/internal/mocks/usecase"
	"dashmonkey/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileHandler_GetProfile(t *testing.T) {
	e := newTestEcho()
	authMiddleware, token := newTestTokenService(t)
	uc := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(uc, discardLogger())
	e.GET("/user/profile", h.GetProfile, authMiddleware.Authenticate)

	uc.EXPECT().GetProfile(mock.Anything, mock.Anything).Return(&usecase.ProfileOutput{
		Username:       "alice",
		Ingress:        "web",
		Discord:        "alice#1234",
		CreatedAt:      time.Now().Add(-time.Hour),
		ActiveSessions: 1,
	}, nil)

	rec := doAuthed(e, http.MethodGet, "/user/profile", token)

	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeResponse(t, rec)
	data := res.Data.(map[string]any)
	assert.Equal(t, "alice", data["username"])
	assert.Equal(t, "alice#1234", data["discord"])
	assert.Equal(t, float64(1), data["activeSessions"])
}

func TestProfileHandler_GetProfile_UserGone(t *testing.T) {
	e := newTestEcho()
	authMiddleware, token := newTestTokenService(t)
	uc := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(uc, discardLogger())
	e.GET("/user/profile", h.GetProfile, authMiddleware.Authenticate)

	uc.EXPECT().GetProfile(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed"))

	rec := doAuthed(e, http.MethodGet, "/user/profile", token)

	require.Equal(t, http.StatusNotFound, rec.Code)
	res := decodeResponse(t, rec)
	assert.Equal(t, "USER_NOT_FOUND", res.Error.Code)
}
