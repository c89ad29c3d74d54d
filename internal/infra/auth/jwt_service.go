// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"dashmonkey/config"
	"dashmonkey/internal/domain/entity"
	"dashmonkey/internal/domain/service"
)

// refreshTokenBytes gives 256 bits of entropy per refresh token.
const refreshTokenBytes = 32

// jwtService implements service.TokenService. Access tokens are HS256 JWTs;
// refresh tokens are opaque random secrets that only ever touch storage as a
// SHA-256 hash.
type jwtService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// accessClaims is the wire shape of the access token payload.
type accessClaims struct {
	Username string `json:"username"`
	Ingress  string `json:"ingress"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService. The signing secret comes
// from configuration and is never read from ambient process state, so tests
// can substitute their own.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:     []byte(cfg.Auth.Secret),
		accessTTL:  cfg.Auth.AccessTokenTTL,
		refreshTTL: cfg.Auth.RefreshTokenTTL,
	}, nil
}

// MintAccessToken signs a self-contained access token for the user.
func (s *jwtService) MintAccessToken(user *entity.User, ingress entity.Ingress) (string, error) {
	now := time.Now()
	claims := accessClaims{
		Username: user.Username,
		Ingress:  ingress.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// VerifyAccessToken parses and verifies an access token, failing closed on
// any signature, structure or expiry problem.
func (s *jwtService) VerifyAccessToken(tokenString string) (*service.AccessClaims, error) {
	var claims accessClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "invalid access token")
	}
	if !token.Valid {
		return nil, errors.New("invalid access token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject in access token")
	}

	out := &service.AccessClaims{
		UserID:   userID,
		Username: claims.Username,
		Ingress:  entity.Ingress(claims.Ingress),
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}

// MintRefreshToken returns a fresh opaque random secret, hex encoded.
func (s *jwtService) MintRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes for refresh token")
	}

	return hex.EncodeToString(buf), nil
}

// HashRefreshToken derives the storage/lookup hash of a refresh token.
func (s *jwtService) HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// AccessTokenTTL returns the configured access token lifetime.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

// RefreshTokenTTL returns the configured refresh token lifetime.
func (s *jwtService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}
