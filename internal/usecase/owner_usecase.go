package usecase

import (
	"context"

	"petclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// OwnerInput defines the candidate data for creating or updating an owner.
// ID is only consulted on update.
type OwnerInput struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
	Password string    `json:"password"`
}

// OwnerUsecase defines the interface for owner-related business operations.
type OwnerUsecase interface {
	GetAll(ctx context.Context) ([]*entity.Owner, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*entity.Owner, error)
	Create(ctx context.Context, input *OwnerInput) (*entity.Owner, error)
	Update(ctx context.Context, input *OwnerInput) (*entity.Owner, error)
	Delete(ctx context.Context, id uuid.UUID) (*entity.Owner, error)
}
