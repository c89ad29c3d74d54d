// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"dashmonkey/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// Password carries the client-side pre-hash; the service treats it as an
// opaque credential and never sees the plaintext.
type RegisterInput struct {
	Username string
	Password string
	Ingress  entity.Ingress
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
	Ingress  entity.Ingress
}

// RefreshInput defines the data required to redeem a refresh token.
type RefreshInput struct {
	RefreshToken string
	Ingress      entity.Ingress
}

// LogoutInput defines the data required to end a session.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// TokenPair bundles the access token and its companion refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterOutput returns the newly created user and their first token pair.
type RegisterOutput struct {
	User   *entity.User
	Tokens TokenPair
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	User   *entity.User
	Tokens TokenPair
}

// RefreshOutput returns the rotated token pair.
type RefreshOutput struct {
	Tokens TokenPair
}

// AuthUsecase defines the interface for the authentication lifecycle.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	// Register creates a new account and immediately issues a token pair.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Login verifies a credential and issues a token pair. Unknown username
	// and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Refresh redeems a refresh token for a new pair, revoking the old
	// token. Each token is redeemable at most once.
	Refresh(ctx context.Context, input RefreshInput) (*RefreshOutput, error)

	// Logout revokes the session behind a refresh token. Idempotent: an
	// already-revoked or unknown token is still success.
	Logout(ctx context.Context, input LogoutInput) error
}
