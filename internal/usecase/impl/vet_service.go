package impl

import (
	"context"
	"log/slog"

	deliverycontext "petclinic/internal/delivery/context"
	"petclinic/internal/domain/entity"
	domainerrors "petclinic/internal/domain/errors"
	"petclinic/internal/domain/repository"
	"petclinic/internal/domain/service"
	"petclinic/internal/domain/validation"
	"petclinic/internal/errors"
	"petclinic/internal/usecase"

	"github.com/google/uuid"
)

// vetService implements the VetUsecase interface over VET-role users.
type vetService struct {
	vetRepo   repository.VetRepository
	validator *validation.Engine
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// NewVetService is the constructor for vetService.
func NewVetService(
	vetRepo repository.VetRepository,
	validator *validation.Engine,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.VetUsecase {
	return &vetService{
		vetRepo:   vetRepo,
		validator: validator,
		hasher:    hasher,
		logger:    logger,
	}
}

func (srv *vetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAll returns every vet profile, secrets stripped.
func (srv *vetService) GetAll(ctx context.Context) ([]*entity.Vet, error) {
	users, err := srv.vetRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vets")
	}

	vets := make([]*entity.Vet, 0, len(users))
	for _, user := range users {
		vets = append(vets, entity.VetFromUser(user))
	}

	return vets, nil
}

// GetOneByID returns a single vet profile.
func (srv *vetService) GetOneByID(ctx context.Context, id uuid.UUID) (*entity.Vet, error) {
	user, err := srv.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	return entity.VetFromUser(user), nil
}

// Create registers a new vet account. The uniqueness probe runs before field
// validation, same as for owners.
func (srv *vetService) Create(ctx context.Context, input *usecase.VetInput) (*entity.Vet, error) {
	srv.log(ctx).Debug("Creating vet", slog.String("email", input.Email))

	existing, err := srv.vetRepo.FindByEmailOrUsername(ctx, input.Email, input.Username)
	if err != nil && !errors.Is(err, repository.ErrVetNotFound) {
		return nil, errors.Wrap(err, "failed to probe vet uniqueness")
	}
	if existing != nil {
		srv.log(ctx).Warn("Vet already exists", slog.String("email", input.Email))

		return nil, domainerrors.ErrVetAlreadyExists.WrapMessage("create vet failed")
	}

	if err := srv.validator.ValidateVet(&validation.AccountPayload{
		Name:     input.Name,
		Email:    input.Email,
		Username: input.Username,
		Password: input.Password,
	}); err != nil {
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash vet password")
	}

	profileID := uuid.New()
	user := &entity.User{
		Name:         input.Name,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         entity.RoleVet,
		VetID:        &profileID,
	}

	if err := srv.vetRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create vet")
	}

	srv.log(ctx).Info("Vet created", slog.Any("userID", user.ID))

	return entity.VetFromUser(user), nil
}

// Update modifies an existing vet account, existence check first.
func (srv *vetService) Update(ctx context.Context, input *usecase.VetInput) (*entity.Vet, error) {
	existing, err := srv.findExisting(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := srv.validator.ValidateVet(&validation.AccountPayload{
		Name:     input.Name,
		Email:    input.Email,
		Username: input.Username,
		Password: input.Password,
	}); err != nil {
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash vet password")
	}

	existing.Name = input.Name
	existing.Email = input.Email
	existing.Username = input.Username
	existing.PasswordHash = passwordHash

	if err := srv.vetRepo.Update(ctx, existing); err != nil {
		return nil, errors.Wrap(err, "failed to update vet")
	}

	srv.log(ctx).Info("Vet updated", slog.Any("userID", existing.ID))

	return entity.VetFromUser(existing), nil
}

// Delete removes a vet account and returns the pre-delete view.
func (srv *vetService) Delete(ctx context.Context, id uuid.UUID) (*entity.Vet, error) {
	existing, err := srv.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.vetRepo.Delete(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to delete vet")
	}

	srv.log(ctx).Info("Vet deleted", slog.Any("userID", id))

	return entity.VetFromUser(existing), nil
}

func (srv *vetService) findExisting(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.vetRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVetNotFound) {
			return nil, domainerrors.ErrVetNotFound.WrapMessage("vet lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find vet by id")
	}

	return user, nil
}
