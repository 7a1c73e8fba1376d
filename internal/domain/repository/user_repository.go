// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer. The store enforces no business rules of its
// own; absence is always reported through the sentinel errors declared here,
// never as a nil-nil pair.
package repository

import (
	"context"
	"errors"

	"petclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindAll retrieves every user record.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByEmailOrUsername retrieves the first user matching either the
	// email or the username. Used as the uniqueness probe before creates.
	FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete physically removes a user record.
	Delete(ctx context.Context, id uuid.UUID) error
}
