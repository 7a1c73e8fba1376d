package usecase

import (
	"context"

	"petclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// VetInput defines the candidate data for creating or updating a vet.
type VetInput struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
	Password string    `json:"password"`
}

// VetUsecase defines the interface for vet-related business operations,
// structurally symmetric to OwnerUsecase.
type VetUsecase interface {
	GetAll(ctx context.Context) ([]*entity.Vet, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*entity.Vet, error)
	Create(ctx context.Context, input *VetInput) (*entity.Vet, error)
	Update(ctx context.Context, input *VetInput) (*entity.Vet, error)
	Delete(ctx context.Context, id uuid.UUID) (*entity.Vet, error)
}
