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

// userService implements the UserUsecase interface. Unlike the owner and vet
// services it operates on accounts of any role and is reserved for admins at
// the delivery layer.
type userService struct {
	userRepo  repository.UserRepository
	validator *validation.Engine
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	validator *validation.Engine,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:  userRepo,
		validator: validator,
		hasher:    hasher,
		logger:    logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAll returns every account, secrets stripped.
func (srv *userService) GetAll(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	sanitized := make([]*entity.User, 0, len(users))
	for _, user := range users {
		sanitized = append(sanitized, user.Sanitized())
	}

	return sanitized, nil
}

// GetOneByID returns a single account.
func (srv *userService) GetOneByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	return user.Sanitized(), nil
}

// Create registers an account with an explicit role. The uniqueness probe
// runs before field validation.
func (srv *userService) Create(ctx context.Context, input *usecase.UserInput) (*entity.User, error) {
	srv.log(ctx).Debug("Creating user",
		slog.String("email", input.Email),
		slog.String("role", input.Role),
	)

	existing, err := srv.userRepo.FindByEmailOrUsername(ctx, input.Email, input.Username)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to probe user uniqueness")
	}
	if existing != nil {
		srv.log(ctx).Warn("User already exists", slog.String("email", input.Email))

		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("create user failed")
	}

	if err := srv.validator.ValidateUser(&validation.UserPayload{
		AccountPayload: validation.AccountPayload{
			Name:     input.Name,
			Email:    input.Email,
			Username: input.Username,
			Password: input.Password,
		},
		Role: input.Role,
	}); err != nil {
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash user password")
	}

	role, ok := entity.ParseRole(input.Role)
	if !ok {
		return nil, errors.Errorf("unknown role %q after validation", input.Role)
	}

	user := &entity.User{
		Name:         input.Name,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         role,
		OwnerID:      input.OwnerID,
		VetID:        input.VetID,
	}
	srv.alignProfileIDs(user)

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created", slog.Any("userID", user.ID))

	return user.Sanitized(), nil
}

// Update modifies an existing account, existence check first.
func (srv *userService) Update(ctx context.Context, input *usecase.UserInput) (*entity.User, error) {
	existing, err := srv.findExisting(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := srv.validator.ValidateUser(&validation.UserPayload{
		AccountPayload: validation.AccountPayload{
			Name:     input.Name,
			Email:    input.Email,
			Username: input.Username,
			Password: input.Password,
		},
		Role: input.Role,
	}); err != nil {
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash user password")
	}

	role, ok := entity.ParseRole(input.Role)
	if !ok {
		return nil, errors.Errorf("unknown role %q after validation", input.Role)
	}

	existing.Name = input.Name
	existing.Email = input.Email
	existing.Username = input.Username
	existing.PasswordHash = passwordHash
	existing.Role = role
	if input.OwnerID != nil {
		existing.OwnerID = input.OwnerID
	}
	if input.VetID != nil {
		existing.VetID = input.VetID
	}
	srv.alignProfileIDs(existing)

	if err := srv.userRepo.Update(ctx, existing); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Info("User updated", slog.Any("userID", existing.ID))

	return existing.Sanitized(), nil
}

// Delete removes an account and returns the pre-delete view.
func (srv *userService) Delete(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	existing, err := srv.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", id))

	return existing.Sanitized(), nil
}

// alignProfileIDs derives the profile back-references strictly from the role:
// the matching id is minted when blank and the mismatched one is cleared, so
// a record never carries more than its role's single back-reference.
func (srv *userService) alignProfileIDs(user *entity.User) {
	switch user.Role {
	case entity.RoleOwner:
		if user.OwnerID == nil {
			profileID := uuid.New()
			user.OwnerID = &profileID
		}
		user.VetID = nil
	case entity.RoleVet:
		if user.VetID == nil {
			profileID := uuid.New()
			user.VetID = &profileID
		}
		user.OwnerID = nil
	case entity.RoleAdmin:
		user.OwnerID = nil
		user.VetID = nil
	}
}

func (srv *userService) findExisting(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}
