// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"dashmonkey/internal/delivery/http/response"
	"dashmonkey/internal/domain/entity"
	domainerrors "dashmonkey/internal/domain/errors"
	"dashmonkey/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerRequest is the wire shape of the registration call. The password
// field carries the client-side pre-hash, never the plaintext.
type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type logoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type userResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Ingress   string `json:"ingress"`
	CreatedAt string `json:"createdAt"`
}

type tokenPairResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         *userResponse `json:"user,omitempty"`
}

// AuthHandler holds dependencies for the authentication endpoints.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// ingress derives the client surface from the request's User-Agent header.
func ingress(c echo.Context) entity.Ingress {
	return entity.ParseIngress(c.Request().UserAgent())
}

// Register handles the registration request. A fresh account is logged in
// immediately, so the response already carries a token pair.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrMalformedRequest.ErrorCode(), "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Ingress:  ingress(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, tokenPairResponse{
		AccessToken:  output.Tokens.AccessToken,
		RefreshToken: output.Tokens.RefreshToken,
		User:         toUserResponse(output.User),
	}, "User registered successfully")
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrMalformedRequest.ErrorCode(), "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
		Ingress:  ingress(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenPairResponse{
		AccessToken:  output.Tokens.AccessToken,
		RefreshToken: output.Tokens.RefreshToken,
	}, "Login successful")
}

// Refresh handles the token rotation request. A missing token is a malformed
// request, not an authentication failure.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrMalformedRequest.ErrorCode(), "Invalid refresh input")
	}
	if req.RefreshToken == "" {
		return domainerrors.ErrMalformedRequest.WithDetails("refreshToken is required")
	}

	output, err := h.uc.Refresh(c.Request().Context(), usecase.RefreshInput{
		RefreshToken: req.RefreshToken,
		Ingress:      ingress(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenPairResponse{
		AccessToken:  output.Tokens.AccessToken,
		RefreshToken: output.Tokens.RefreshToken,
	}, "Token refreshed successfully")
}

// Logout handles the logout request. Revoking an unknown token still succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrMalformedRequest.ErrorCode(), "Invalid logout input")
	}
	if req.RefreshToken == "" {
		return domainerrors.ErrMalformedRequest.WithDetails("refreshToken is required")
	}

	if err := h.uc.Logout(c.Request().Context(), usecase.LogoutInput{RefreshToken: req.RefreshToken}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

func toUserResponse(user *entity.User) *userResponse {
	if user == nil {
		return nil
	}

	return &userResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Ingress:   user.Ingress.String(),
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
	}
}
