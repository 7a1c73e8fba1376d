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

// petRepository implements the repository.PetRepository interface using GORM.
type petRepository struct {
	db *gorm.DB
}

// NewPetRepository is the constructor for petRepository.
func NewPetRepository(db *gorm.DB) repository.PetRepository {
	return &petRepository{db: db}
}

// FindAll retrieves every pet record.
func (repo *petRepository) FindAll(ctx context.Context) ([]*entity.Pet, error) {
	var models []*model.PetModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pets")
	}

	pets := make([]*entity.Pet, 0, len(models))
	for _, m := range models {
		pets = append(pets, model.ToPetDomain(m))
	}

	return pets, nil
}

// FindByID retrieves a single pet by its unique ID.
func (repo *petRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	var petM model.PetModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&petM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPetNotFound
		}

		return nil, errors.Wrap(err, "failed to find pet by id")
	}

	return model.ToPetDomain(&petM), nil
}

// FindByNaturalKey retrieves the pet matching name+breed under the given owner.
func (repo *petRepository) FindByNaturalKey(ctx context.Context, name, breed string, ownerID uuid.UUID) (*entity.Pet, error) {
	var petM model.PetModel
	err := repo.db.WithContext(ctx).
		Where("name = ? AND breed = ? AND owner_id = ?", name, breed, ownerID).
		First(&petM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPetNotFound
		}

		return nil, errors.Wrap(err, "failed to find pet by natural key")
	}

	return model.ToPetDomain(&petM), nil
}

// Create persists a new pet entity to the database.
func (repo *petRepository) Create(ctx context.Context, pet *entity.Pet) error {
	petM := model.FromPetDomain(pet)

	if err := repo.db.WithContext(ctx).Create(petM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPetAlreadyExists.WrapMessage("pet natural key already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOwnerNotFound.WrapMessage("pet owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required pet information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pet")
	}

	pet.ID = petM.ID
	pet.CreatedAt = petM.CreatedAt
	pet.UpdatedAt = petM.UpdatedAt

	return nil
}

// Update modifies an existing pet record.
func (repo *petRepository) Update(ctx context.Context, pet *entity.Pet) error {
	petM := model.FromPetDomain(pet)

	result := repo.db.WithContext(ctx).
		Model(&model.PetModel{}).
		Where("id = ?", petM.ID).
		Updates(map[string]any{
			"name":     petM.Name,
			"breed":    petM.Breed,
			"color":    petM.Color,
			"age":      petM.Age,
			"weight":   petM.Weight,
			"type":     petM.Type,
			"owner_id": petM.OwnerID,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrPetAlreadyExists.WrapMessage("pet natural key already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update pet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPetNotFound
	}

	return nil
}

// Delete physically removes a pet record.
func (repo *petRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PetModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete pet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPetNotFound
	}

	return nil
}
