package impl

import (
	"context"
	"testing"

	"petclinic/internal/domain/entity"
	domainerrors "petclinic/internal/domain/errors"
	"petclinic/internal/domain/repository"
	mockRepo "petclinic/internal/mocks/repository"
	"petclinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// petServiceFixtures holds all test dependencies for pet service tests.
type petServiceFixtures struct {
	service   usecase.PetUsecase
	petRepo   *mockRepo.MockPetRepository
	ownerRepo *mockRepo.MockOwnerRepository
}

func createTestPetService(t *testing.T) petServiceFixtures {
	petRepo := mockRepo.NewMockPetRepository(t)
	ownerRepo := mockRepo.NewMockOwnerRepository(t)

	service := NewPetService(petRepo, ownerRepo, newTestValidator(), newDiscardLogger())

	return petServiceFixtures{
		service:   service,
		petRepo:   petRepo,
		ownerRepo: ownerRepo,
	}
}

func validPetInput(ownerID uuid.UUID) *usecase.PetInput {
	return &usecase.PetInput{
		Name:    "Syrax",
		Breed:   "Golden",
		Color:   "Yellow",
		Age:     4,
		Weight:  12.5,
		Type:    "DOG",
		OwnerID: ownerID,
	}
}

func TestPetService_Create_Success(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	owner := newOwnerUser()
	input := validPetInput(*owner.OwnerID)

	fx.ownerRepo.EXPECT().FindByProfileID(ctx, *owner.OwnerID).Return(owner, nil)
	fx.petRepo.EXPECT().
		FindByNaturalKey(ctx, input.Name, input.Breed, input.OwnerID).
		Return(nil, repository.ErrPetNotFound)
	fx.petRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Pet")).
		Run(func(ctx context.Context, pet *entity.Pet) {
			pet.ID = uuid.New()
		}).
		Return(nil)

	pet, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, pet)
	assert.Equal(t, "Syrax", pet.Name)
	assert.Equal(t, entity.PetTypeDog, pet.Type)
	assert.Equal(t, *owner.OwnerID, pet.OwnerID)
}

func TestPetService_Create_DanglingOwner(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := validPetInput(ownerID)

	fx.ownerRepo.EXPECT().FindByProfileID(ctx, ownerID).Return(nil, repository.ErrOwnerNotFound)

	pet, err := fx.service.Create(ctx, input)

	assert.Nil(t, pet)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOwnerNotFound))
}

func TestPetService_Create_DuplicateNaturalKey(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	owner := newOwnerUser()
	input := validPetInput(*owner.OwnerID)

	existing := &entity.Pet{
		ID:      uuid.New(),
		Name:    input.Name,
		Breed:   input.Breed,
		OwnerID: input.OwnerID,
	}

	fx.ownerRepo.EXPECT().FindByProfileID(ctx, *owner.OwnerID).Return(owner, nil)
	fx.petRepo.EXPECT().
		FindByNaturalKey(ctx, input.Name, input.Breed, input.OwnerID).
		Return(existing, nil)

	pet, err := fx.service.Create(ctx, input)

	assert.Nil(t, pet)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPetAlreadyExists))
}

func TestPetService_Create_DuplicateWinsOverInvalidPayload(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	owner := newOwnerUser()
	input := validPetInput(*owner.OwnerID)
	input.Age = -3 // invalid, but the natural key is already taken

	existing := &entity.Pet{ID: uuid.New(), Name: input.Name, Breed: input.Breed, OwnerID: input.OwnerID}

	fx.ownerRepo.EXPECT().FindByProfileID(ctx, *owner.OwnerID).Return(owner, nil)
	fx.petRepo.EXPECT().
		FindByNaturalKey(ctx, input.Name, input.Breed, input.OwnerID).
		Return(existing, nil)

	pet, err := fx.service.Create(ctx, input)

	assert.Nil(t, pet)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPetAlreadyExists))

	var validationErr *domainerrors.ValidationError
	assert.False(t, errors.As(err, &validationErr))
}

func TestPetService_Create_InvalidPayloadNeverReachesRepository(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	owner := newOwnerUser()
	input := validPetInput(*owner.OwnerID)
	input.Type = "DRAGON"

	fx.ownerRepo.EXPECT().FindByProfileID(ctx, *owner.OwnerID).Return(owner, nil)
	fx.petRepo.EXPECT().
		FindByNaturalKey(ctx, input.Name, input.Breed, input.OwnerID).
		Return(nil, repository.ErrPetNotFound)

	pet, err := fx.service.Create(ctx, input)

	assert.Nil(t, pet)
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "pet", validationErr.Entity())
}

func TestPetService_Update_ExistenceCheckedFirst(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	input := validPetInput(uuid.New())
	input.ID = uuid.New()

	fx.petRepo.EXPECT().FindByID(ctx, input.ID).Return(nil, repository.ErrPetNotFound)

	pet, err := fx.service.Update(ctx, input)

	assert.Nil(t, pet)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPetNotFound))
}

func TestPetService_Update_Success(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	owner := newOwnerUser()
	existing := &entity.Pet{
		ID:      uuid.New(),
		Name:    "Syrax",
		Breed:   "Golden",
		Color:   "Yellow",
		Age:     4,
		Weight:  12.5,
		Type:    entity.PetTypeDog,
		OwnerID: *owner.OwnerID,
	}

	input := validPetInput(*owner.OwnerID)
	input.ID = existing.ID
	input.Age = 5
	input.Weight = 13.1

	fx.petRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.ownerRepo.EXPECT().FindByProfileID(ctx, *owner.OwnerID).Return(owner, nil)
	fx.petRepo.EXPECT().Update(ctx, existing).Return(nil)

	pet, err := fx.service.Update(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, pet)
	assert.Equal(t, 5, pet.Age)
	assert.Equal(t, 13.1, pet.Weight)
}

func TestPetService_Delete_ReturnsPreDeleteRecord(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	existing := &entity.Pet{ID: uuid.New(), Name: "Syrax", Type: entity.PetTypeDog}

	fx.petRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.petRepo.EXPECT().Delete(ctx, existing.ID).Return(nil)

	pet, err := fx.service.Delete(ctx, existing.ID)

	require.NoError(t, err)
	require.NotNil(t, pet)
	assert.Equal(t, existing.ID, pet.ID)
	assert.Equal(t, "Syrax", pet.Name)
}

func TestPetService_GetAll(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	pets := []*entity.Pet{
		{ID: uuid.New(), Name: "Syrax"},
		{ID: uuid.New(), Name: "Caraxes"},
	}

	fx.petRepo.EXPECT().FindAll(ctx).Return(pets, nil)

	got, err := fx.service.GetAll(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
