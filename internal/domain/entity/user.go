// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity of the system, representing one registered account.
// The username is the natural key: it is unique, case-sensitive, and sessions
// reference it directly.
type User struct {
	ID           uuid.UUID // The unique identifier assigned at creation, immutable afterwards.
	Username     string    // Unique, case-sensitive login name.
	PasswordHash string    // At-rest hash of the client-supplied credential. Never the plaintext password.
	Ingress      Ingress   // The client surface the account was registered from, kept for audit.
	Discord      string    // Optional Discord handle shown on the profile.
	Telegram     string    // Optional Telegram handle shown on the profile.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
