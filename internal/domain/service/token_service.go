package service

import (
	"time"

	"dashmonkey/internal/domain/entity"

	"github.com/google/uuid"
)

// AccessClaims is the decoded payload of a verified access token.
// An access token is self-contained: these claims plus the signature are the
// entire authorization state, no storage round-trip involved.
type AccessClaims struct {
	UserID    uuid.UUID
	Username  string
	Ingress   entity.Ingress
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService is the token codec: stateless minting and verification of
// signed access tokens plus minting and hashing of opaque refresh tokens.
// Implementations hold the signing secret injected at construction and keep
// it immutable for the process lifetime.
type TokenService interface {
	// MintAccessToken signs a short-lived access token for the user,
	// embedding the ingress the current request arrived on.
	MintAccessToken(user *entity.User, ingress entity.Ingress) (string, error)

	// VerifyAccessToken checks signature and expiry and returns the decoded
	// claims. It fails closed: any signature mismatch, malformed payload or
	// past expiry yields an error, never a panic.
	VerifyAccessToken(token string) (*AccessClaims, error)

	// MintRefreshToken returns a fresh cryptographically random opaque
	// secret with at least 256 bits of entropy. It carries no claims.
	MintRefreshToken() (string, error)

	// HashRefreshToken derives the deterministic one-way hash under which a
	// refresh token is stored and looked up.
	HashRefreshToken(token string) string

	// AccessTokenTTL returns the configured access token lifetime.
	AccessTokenTTL() time.Duration

	// RefreshTokenTTL returns the configured refresh token lifetime.
	RefreshTokenTTL() time.Duration
}
