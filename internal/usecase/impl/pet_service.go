package impl

import (
	"context"
	"log/slog"

	deliverycontext "petclinic/internal/delivery/context"
	"petclinic/internal/domain/entity"
	domainerrors "petclinic/internal/domain/errors"
	"petclinic/internal/domain/repository"
	"petclinic/internal/domain/validation"
	"petclinic/internal/errors"
	"petclinic/internal/usecase"

	"github.com/google/uuid"
)

// petService implements the PetUsecase interface. Pets reference the owner
// profile id on a user record, not the user id itself, so create and update
// probe the owner repository before anything else.
type petService struct {
	petRepo   repository.PetRepository
	ownerRepo repository.OwnerRepository
	validator *validation.Engine
	logger    *slog.Logger
}

// NewPetService is the constructor for petService.
func NewPetService(
	petRepo repository.PetRepository,
	ownerRepo repository.OwnerRepository,
	validator *validation.Engine,
	logger *slog.Logger,
) usecase.PetUsecase {
	return &petService{
		petRepo:   petRepo,
		ownerRepo: ownerRepo,
		validator: validator,
		logger:    logger,
	}
}

func (srv *petService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAll returns every registered pet.
func (srv *petService) GetAll(ctx context.Context) ([]*entity.Pet, error) {
	pets, err := srv.petRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pets")
	}

	return pets, nil
}

// GetOneByID returns a single pet.
func (srv *petService) GetOneByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	return srv.findExisting(ctx, id)
}

// Create registers a new pet. The checks run in a fixed order: the owner
// reference first, then the name+breed+owner natural key, then field
// validation. A dangling owner wins over a duplicate, and a duplicate wins
// over a malformed payload.
func (srv *petService) Create(ctx context.Context, input *usecase.PetInput) (*entity.Pet, error) {
	srv.log(ctx).Debug("Creating pet",
		slog.String("name", input.Name),
		slog.Any("ownerID", input.OwnerID),
	)

	if err := srv.checkOwnerExists(ctx, input.OwnerID); err != nil {
		return nil, err
	}

	duplicate, err := srv.petRepo.FindByNaturalKey(ctx, input.Name, input.Breed, input.OwnerID)
	if err != nil && !errors.Is(err, repository.ErrPetNotFound) {
		return nil, errors.Wrap(err, "failed to probe pet uniqueness")
	}
	if duplicate != nil {
		srv.log(ctx).Warn("Pet already exists",
			slog.String("name", input.Name),
			slog.Any("ownerID", input.OwnerID),
		)

		return nil, domainerrors.ErrPetAlreadyExists.WrapMessage("create pet failed")
	}

	if err := srv.validatePet(input); err != nil {
		return nil, err
	}

	pet := &entity.Pet{
		Name:    input.Name,
		Breed:   input.Breed,
		Color:   input.Color,
		Age:     input.Age,
		Weight:  input.Weight,
		Type:    entity.PetType(input.Type),
		OwnerID: input.OwnerID,
	}

	if err := srv.petRepo.Create(ctx, pet); err != nil {
		return nil, errors.Wrap(err, "failed to create pet")
	}

	srv.log(ctx).Info("Pet created", slog.Any("petID", pet.ID))

	return pet, nil
}

// Update modifies an existing pet. Existence first, then the owner
// reference, then field validation.
func (srv *petService) Update(ctx context.Context, input *usecase.PetInput) (*entity.Pet, error) {
	existing, err := srv.findExisting(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := srv.checkOwnerExists(ctx, input.OwnerID); err != nil {
		return nil, err
	}

	if err := srv.validatePet(input); err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Breed = input.Breed
	existing.Color = input.Color
	existing.Age = input.Age
	existing.Weight = input.Weight
	existing.Type = entity.PetType(input.Type)
	existing.OwnerID = input.OwnerID

	if err := srv.petRepo.Update(ctx, existing); err != nil {
		return nil, errors.Wrap(err, "failed to update pet")
	}

	srv.log(ctx).Info("Pet updated", slog.Any("petID", existing.ID))

	return existing, nil
}

// Delete removes a pet and returns the pre-delete record.
func (srv *petService) Delete(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	existing, err := srv.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.petRepo.Delete(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to delete pet")
	}

	srv.log(ctx).Info("Pet deleted", slog.Any("petID", id))

	return existing, nil
}

func (srv *petService) validatePet(input *usecase.PetInput) error {
	return srv.validator.ValidatePet(&validation.PetPayload{
		Name:    input.Name,
		Breed:   input.Breed,
		Color:   input.Color,
		Age:     input.Age,
		Weight:  input.Weight,
		Type:    input.Type,
		OwnerID: input.OwnerID.String(),
	})
}

// checkOwnerExists probes the owner profile id a pet points at.
func (srv *petService) checkOwnerExists(ctx context.Context, ownerID uuid.UUID) error {
	if _, err := srv.ownerRepo.FindByProfileID(ctx, ownerID); err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return domainerrors.ErrOwnerNotFound.WrapMessage("pet owner check failed")
		}

		return errors.Wrap(err, "failed to check pet owner")
	}

	return nil
}

func (srv *petService) findExisting(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	pet, err := srv.petRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, domainerrors.ErrPetNotFound.WrapMessage("pet lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find pet by id")
	}

	return pet, nil
}
