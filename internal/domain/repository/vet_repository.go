package repository

import (
	"context"
	"errors"

	"petclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVetNotFound is returned when no vet-role user matches the lookup.
var ErrVetNotFound = errors.New("vet not found")

// VetRepository scopes user persistence to VET-role records,
// structurally symmetric to OwnerRepository.
type VetRepository interface {
	// FindAll retrieves every VET-role user.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single VET-role user by account ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmailOrUsername retrieves the first user matching either value,
	// regardless of role.
	FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error)

	// Create persists a new VET-role user.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing VET-role user.
	Update(ctx context.Context, user *entity.User) error

	// Delete physically removes a VET-role user record.
	Delete(ctx context.Context, id uuid.UUID) error
}
