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

// vetRepository implements the repository.VetRepository interface using GORM.
// It scopes role-bound queries to VET accounts on the users table.
type vetRepository struct {
	db *gorm.DB
}

// NewVetRepository is the constructor for vetRepository.
func NewVetRepository(db *gorm.DB) repository.VetRepository {
	return &vetRepository{db: db}
}

// FindAll retrieves every VET-role user.
func (repo *vetRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var models []*model.UserModel
	err := repo.db.WithContext(ctx).
		Where("role = ?", entity.RoleVet.String()).
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vets")
	}

	users := make([]*entity.User, 0, len(models))
	for _, m := range models {
		users = append(users, model.ToUserDomain(m))
	}

	return users, nil
}

// FindByID retrieves a single VET-role user by account ID.
func (repo *vetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, entity.RoleVet.String()).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVetNotFound
		}

		return nil, errors.Wrap(err, "failed to find vet by id")
	}

	return model.ToUserDomain(&userM), nil
}

// FindByEmailOrUsername retrieves the first user matching either value,
// regardless of role.
func (repo *vetRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ? OR username = ?", email, username).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVetNotFound
		}

		return nil, errors.Wrap(err, "failed to find vet by email or username")
	}

	return model.ToUserDomain(&userM), nil
}

// Create persists a new VET-role user.
func (repo *vetRepository) Create(ctx context.Context, user *entity.User) error {
	userM := model.FromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrVetAlreadyExists.WrapMessage("email or username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required vet information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vet")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing VET-role user.
func (repo *vetRepository) Update(ctx context.Context, user *entity.User) error {
	userM := model.FromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND role = ?", userM.ID, entity.RoleVet.String()).
		Updates(map[string]any{
			"name":          userM.Name,
			"username":      userM.Username,
			"email":         userM.Email,
			"password_hash": userM.PasswordHash,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrVetAlreadyExists.WrapMessage("email or username already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update vet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVetNotFound
	}

	return nil
}

// Delete physically removes a VET-role user record.
func (repo *vetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, entity.RoleVet.String()).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete vet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVetNotFound
	}

	return nil
}
