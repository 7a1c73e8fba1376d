package repository

import (
	"context"
	"errors"

	"petclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPetNotFound is returned when no pet matches the lookup.
var ErrPetNotFound = errors.New("pet not found")

// PetRepository defines the standard operations for pet persistence.
type PetRepository interface {
	// FindAll retrieves every pet record.
	FindAll(ctx context.Context) ([]*entity.Pet, error)

	// FindByID retrieves a single pet by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error)

	// FindByNaturalKey retrieves the pet matching name+breed under the given
	// owner. Used as the uniqueness probe before creates.
	FindByNaturalKey(ctx context.Context, name, breed string, ownerID uuid.UUID) (*entity.Pet, error)

	// Create persists a new pet entity to the storage.
	Create(ctx context.Context, pet *entity.Pet) error

	// Update modifies an existing pet entity in the storage.
	Update(ctx context.Context, pet *entity.Pet) error

	// Delete physically removes a pet record.
	Delete(ctx context.Context, id uuid.UUID) error
}
