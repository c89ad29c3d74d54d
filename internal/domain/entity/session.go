// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Session represents one outstanding refresh grant: a long-lived, authorized
// login on a single device. The raw refresh token is never persisted, only
// its SHA-256 hash.
//
// A session is valid iff Revoked is false and ExpiresAt is in the future.
// Sessions are never physically deleted on revocation; the Revoked flag is a
// soft delete kept for audit.
type Session struct {
	Username  string    // Links the session to the owning User by natural key.
	TokenHash string    // SHA-256 hash of the raw refresh token, used for storage and lookup.
	ExpiresAt time.Time // Absolute expiry, computed as issuance time + refresh TTL.
	Revoked   bool      // Set on logout or when the token is rotated away.
	CreatedAt time.Time // Timestamp of when the session was issued.
}

// Valid reports whether the session can still redeem a refresh.
func (s *Session) Valid(now time.Time) bool {
	return !s.Revoked && s.ExpiresAt.After(now)
}
