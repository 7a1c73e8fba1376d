package usecase

import (
	"context"

	"petclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// UserInput defines the candidate data for creating or updating a user
// through the generic identity CRUD. Role arrives as a raw string and is
// re-derived through the central enum mapping before persistence.
type UserInput struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Username string     `json:"username"`
	Password string     `json:"password"`
	Role     string     `json:"role"`
	OwnerID  *uuid.UUID `json:"ownerID,omitempty"`
	VetID    *uuid.UUID `json:"vetID,omitempty"`
}

// UserUsecase defines the interface for user-related business operations.
// Returned users are always sanitized copies.
type UserUsecase interface {
	GetAll(ctx context.Context) ([]*entity.User, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	Create(ctx context.Context, input *UserInput) (*entity.User, error)
	Update(ctx context.Context, input *UserInput) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
