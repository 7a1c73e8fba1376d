package postgres

import (
	"context"

	"petclinic/internal/domain/entity"
	domainerrors "petclinic/internal/domain/errors"
	"petclinic/internal/domain/repository"
	"petclinic/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ownerRepository implements the repository.OwnerRepository interface using
// GORM. It scopes role-bound queries to OWNER accounts on the users table.
type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository is the constructor for ownerRepository.
func NewOwnerRepository(db *gorm.DB) repository.OwnerRepository {
	return &ownerRepository{db: db}
}

// FindAll retrieves every OWNER-role user.
func (repo *ownerRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var models []*model.UserModel
	err := repo.db.WithContext(ctx).
		Where("role = ?", entity.RoleOwner.String()).
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owners")
	}

	users := make([]*entity.User, 0, len(models))
	for _, m := range models {
		users = append(users, model.ToUserDomain(m))
	}

	return users, nil
}

// FindByID retrieves a single OWNER-role user by account ID.
func (repo *ownerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, entity.RoleOwner.String()).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner by id")
	}

	return model.ToUserDomain(&userM), nil
}

// FindByProfileID resolves the user carrying the given owner profile ID.
func (repo *ownerRepository) FindByProfileID(ctx context.Context, ownerID uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner by profile id")
	}

	return model.ToUserDomain(&userM), nil
}

// FindByEmailOrUsername retrieves the first user matching either value,
// regardless of role.
func (repo *ownerRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ? OR username = ?", email, username).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner by email or username")
	}

	return model.ToUserDomain(&userM), nil
}

// Create persists a new OWNER-role user.
func (repo *ownerRepository) Create(ctx context.Context, user *entity.User) error {
	userM := model.FromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrOwnerAlreadyExists.WrapMessage("email or username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required owner information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create owner")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing OWNER-role user.
func (repo *ownerRepository) Update(ctx context.Context, user *entity.User) error {
	userM := model.FromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND role = ?", userM.ID, entity.RoleOwner.String()).
		Updates(map[string]any{
			"name":          userM.Name,
			"username":      userM.Username,
			"email":         userM.Email,
			"password_hash": userM.PasswordHash,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrOwnerAlreadyExists.WrapMessage("email or username already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update owner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOwnerNotFound
	}

	return nil
}

// Delete physically removes an OWNER-role user record.
func (repo *ownerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, entity.RoleOwner.String()).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete owner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOwnerNotFound
	}

	return nil
}
