package repository

import (
	"context"
	"errors"

	"petclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOwnerNotFound is returned when no owner-role user matches the lookup.
var ErrOwnerNotFound = errors.New("owner not found")

// OwnerRepository scopes user persistence to OWNER-role records. The owner
// identity is carried on the User record, so the port trades in *entity.User;
// the service layer maps results onto Owner profile views.
type OwnerRepository interface {
	// FindAll retrieves every OWNER-role user.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single OWNER-role user by account ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByProfileID resolves the user carrying the given owner profile ID.
	// This is the referential probe used when a Pet names its owner.
	FindByProfileID(ctx context.Context, ownerID uuid.UUID) (*entity.User, error)

	// FindByEmailOrUsername retrieves the first user matching either value,
	// regardless of role. Uniqueness of email and username spans all users.
	FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error)

	// Create persists a new OWNER-role user.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing OWNER-role user.
	Update(ctx context.Context, user *entity.User) error

	// Delete physically removes an OWNER-role user record.
	Delete(ctx context.Context, id uuid.UUID) error
}
