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

// ownerService implements the OwnerUsecase interface. An owner is an
// OWNER-role user; the service keeps the account and its profile
// back-reference consistent since the store enforces nothing itself.
type ownerService struct {
	ownerRepo repository.OwnerRepository
	validator *validation.Engine
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// NewOwnerService is the constructor for ownerService.
func NewOwnerService(
	ownerRepo repository.OwnerRepository,
	validator *validation.Engine,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.OwnerUsecase {
	return &ownerService{
		ownerRepo: ownerRepo,
		validator: validator,
		hasher:    hasher,
		logger:    logger,
	}
}

func (srv *ownerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAll returns every owner profile, secrets stripped.
func (srv *ownerService) GetAll(ctx context.Context) ([]*entity.Owner, error) {
	users, err := srv.ownerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owners")
	}

	owners := make([]*entity.Owner, 0, len(users))
	for _, user := range users {
		owners = append(owners, entity.OwnerFromUser(user))
	}

	return owners, nil
}

// GetOneByID returns a single owner profile.
func (srv *ownerService) GetOneByID(ctx context.Context, id uuid.UUID) (*entity.Owner, error) {
	user, err := srv.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	return entity.OwnerFromUser(user), nil
}

// Create registers a new owner account. The uniqueness probe deliberately
// runs before field validation: a duplicate identity is reported as
// AlreadyExists even when the rest of the payload is malformed.
func (srv *ownerService) Create(ctx context.Context, input *usecase.OwnerInput) (*entity.Owner, error) {
	srv.log(ctx).Debug("Creating owner", slog.String("email", input.Email))

	existing, err := srv.ownerRepo.FindByEmailOrUsername(ctx, input.Email, input.Username)
	if err != nil && !errors.Is(err, repository.ErrOwnerNotFound) {
		return nil, errors.Wrap(err, "failed to probe owner uniqueness")
	}
	if existing != nil {
		srv.log(ctx).Warn("Owner already exists", slog.String("email", input.Email))

		return nil, domainerrors.ErrOwnerAlreadyExists.WrapMessage("create owner failed")
	}

	if err := srv.validator.ValidateOwner(&validation.AccountPayload{
		Name:     input.Name,
		Email:    input.Email,
		Username: input.Username,
		Password: input.Password,
	}); err != nil {
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash owner password")
	}

	profileID := uuid.New()
	user := &entity.User{
		Name:         input.Name,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         entity.RoleOwner,
		OwnerID:      &profileID,
	}

	if err := srv.ownerRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create owner")
	}

	srv.log(ctx).Info("Owner created", slog.Any("userID", user.ID))

	return entity.OwnerFromUser(user), nil
}

// Update modifies an existing owner account. The existence check runs before
// field validation so a malformed payload for a missing owner reports NotFound.
func (srv *ownerService) Update(ctx context.Context, input *usecase.OwnerInput) (*entity.Owner, error) {
	existing, err := srv.findExisting(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := srv.validator.ValidateOwner(&validation.AccountPayload{
		Name:     input.Name,
		Email:    input.Email,
		Username: input.Username,
		Password: input.Password,
	}); err != nil {
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash owner password")
	}

	existing.Name = input.Name
	existing.Email = input.Email
	existing.Username = input.Username
	existing.PasswordHash = passwordHash

	if err := srv.ownerRepo.Update(ctx, existing); err != nil {
		return nil, errors.Wrap(err, "failed to update owner")
	}

	srv.log(ctx).Info("Owner updated", slog.Any("userID", existing.ID))

	return entity.OwnerFromUser(existing), nil
}

// Delete removes an owner account and returns the pre-delete view.
func (srv *ownerService) Delete(ctx context.Context, id uuid.UUID) (*entity.Owner, error) {
	existing, err := srv.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.ownerRepo.Delete(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to delete owner")
	}

	srv.log(ctx).Info("Owner deleted", slog.Any("userID", id))

	return entity.OwnerFromUser(existing), nil
}

// findExisting loads an owner or raises the typed NotFound error.
func (srv *ownerService) findExisting(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.ownerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, domainerrors.ErrOwnerNotFound.WrapMessage("owner lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find owner by id")
	}

	return user, nil
}
