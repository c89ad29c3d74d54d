package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'monkey_sessions' table. Rows hold refresh-token
// hashes only, never the tokens themselves, and are soft-deleted through the
// revoked flag.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Username  string    `gorm:"type:varchar(100);not null;index"`
	TokenHash string    `gorm:"type:varchar(64);unique;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Revoked   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "monkey_sessions"
}
