package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'monkey_users' table. PostgreSQL generates UUIDs via uuid_generate_v4().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Username  string    `gorm:"type:varchar(100);unique;not null"`
	Password  string    `gorm:"type:varchar(255);not null"`
	Ingress   string    `gorm:"type:varchar(20);not null;default:'web'"`
	Discord   string    `gorm:"type:varchar(255)"`
	Telegram  string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time

	Sessions []SessionModel `gorm:"foreignKey:Username;references:Username"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "monkey_users"
}
