// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"dashmonkey/config"
	"dashmonkey/internal/domain/service"
)

// bcryptHasher implements service.PasswordHasher with bcrypt. The input is
// the client-side pre-hash; bcrypt salts it at rest and compares in constant
// time, so the store never does a plain-equality match on the credential.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted at-rest hash from the opaque credential.
func (h *bcryptHasher) Hash(credential string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(credential), h.cost)

	return string(bytes), err
}

// Check compares an opaque credential with a stored bcrypt hash.
func (h *bcryptHasher) Check(credential, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(credential)) == nil
}
