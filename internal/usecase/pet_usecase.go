package usecase

import (
	"context"

	"petclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// PetInput defines the candidate data for creating or updating a pet.
// OwnerID names the owner profile the pet belongs to.
type PetInput struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Breed   string    `json:"breed"`
	Color   string    `json:"color"`
	Age     int       `json:"age"`
	Weight  float64   `json:"weight"`
	Type    string    `json:"type"`
	OwnerID uuid.UUID `json:"ownerID"`
}

// PetUsecase defines the interface for pet-related business operations.
type PetUsecase interface {
	GetAll(ctx context.Context) ([]*entity.Pet, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error)
	Create(ctx context.Context, input *PetInput) (*entity.Pet, error)
	Update(ctx context.Context, input *PetInput) (*entity.Pet, error)
	Delete(ctx context.Context, id uuid.UUID) (*entity.Pet, error)
}
