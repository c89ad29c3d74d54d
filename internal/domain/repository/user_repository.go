// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"dashmonkey/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUsername is returned when an insert collides with an
	// existing username. The unique constraint on the users table is the
	// sole detection mechanism; the repository translates the driver's
	// unique-violation into this error so callers never see a generic
	// storage failure for it.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository is the credential store: it owns the physical persistence
// of username/credential pairs and is the only writer of the users table.
type UserRepository interface {
	// Create persists a new user. A duplicate username yields ErrDuplicateUsername.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a single user by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
