// Package repository defines the persistence interfaces the domain depends on.
// Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"wholesale/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserNotFound is returned when a user cannot be resolved by id or email.
var ErrUserNotFound = errors.New("user not found")

// UserRepository handles persistence of staff accounts.
type UserRepository interface {
	// Create persists a new user. The generated id and timestamps are
	// written back onto the entity.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their login email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
