package impl

import (
	"context"
	"testing"

	"petclinic/internal/domain/entity"
	domainerrors "petclinic/internal/domain/errors"
	"petclinic/internal/domain/repository"
	mockRepo "petclinic/internal/mocks/repository"
	mockSvc "petclinic/internal/mocks/service"
	"petclinic/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// vetServiceFixtures holds all test dependencies for vet service tests.
type vetServiceFixtures struct {
	service usecase.VetUsecase
	vetRepo *mockRepo.MockVetRepository
	hasher  *mockSvc.MockPasswordHasher
}

func createTestVetService(t *testing.T) vetServiceFixtures {
	vetRepo := mockRepo.NewMockVetRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewVetService(vetRepo, newTestValidator(), hasher, newDiscardLogger())

	return vetServiceFixtures{
		service: service,
		vetRepo: vetRepo,
		hasher:  hasher,
	}
}

func validVetInput() *usecase.VetInput {
	return &usecase.VetInput{
		Name:     "Grand Maester Gerardys",
		Email:    "gerardys@dragonstone.com",
		Username: "gerardys",
		Password: "Dragons123!",
	}
}

func TestVetService_Create_Success(t *testing.T) {
	fx := createTestVetService(t)

	ctx := context.Background()
	input := validVetInput()

	fx.vetRepo.EXPECT().
		FindByEmailOrUsername(ctx, input.Email, input.Username).
		Return(nil, repository.ErrVetNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.vetRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	vet, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, vet)
	assert.Equal(t, entity.RoleVet, vet.Role)
	assert.NotNil(t, vet.VetID, "a fresh profile id is minted on create")
}

func TestVetService_Create_DuplicateWinsOverInvalidPayload(t *testing.T) {
	fx := createTestVetService(t)

	ctx := context.Background()
	input := validVetInput()
	input.Password = "weak"

	fx.vetRepo.EXPECT().
		FindByEmailOrUsername(ctx, input.Email, input.Username).
		Return(newVetUser(), nil)

	vet, err := fx.service.Create(ctx, input)

	assert.Nil(t, vet)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVetAlreadyExists))

	var validationErr *domainerrors.ValidationError
	assert.False(t, errors.As(err, &validationErr))
}

func TestVetService_Update_ExistenceCheckedBeforeValidation(t *testing.T) {
	fx := createTestVetService(t)

	ctx := context.Background()
	input := validVetInput()
	input.ID = newVetUser().ID
	input.Password = "weak"

	fx.vetRepo.EXPECT().FindByID(ctx, input.ID).Return(nil, repository.ErrVetNotFound)

	vet, err := fx.service.Update(ctx, input)

	assert.Nil(t, vet)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVetNotFound))
}

func TestVetService_Delete_ReturnsPreDeleteView(t *testing.T) {
	fx := createTestVetService(t)

	ctx := context.Background()
	existing := newVetUser()

	fx.vetRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.vetRepo.EXPECT().Delete(ctx, existing.ID).Return(nil)

	vet, err := fx.service.Delete(ctx, existing.ID)

	require.NoError(t, err)
	require.NotNil(t, vet)
	assert.Equal(t, existing.ID, vet.ID)
	assert.Equal(t, existing.VetID, vet.VetID)
}
