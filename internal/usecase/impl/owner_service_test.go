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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ownerServiceFixtures holds all test dependencies for owner service tests.
type ownerServiceFixtures struct {
	service   usecase.OwnerUsecase
	ownerRepo *mockRepo.MockOwnerRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestOwnerService(t *testing.T) ownerServiceFixtures {
	ownerRepo := mockRepo.NewMockOwnerRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewOwnerService(ownerRepo, newTestValidator(), hasher, newDiscardLogger())

	return ownerServiceFixtures{
		service:   service,
		ownerRepo: ownerRepo,
		hasher:    hasher,
	}
}

func validOwnerInput() *usecase.OwnerInput {
	return &usecase.OwnerInput{
		Name:     "Rhaenyra Targaryen",
		Email:    "rhaenyra@dragonstone.com",
		Username: "rhaenyra",
		Password: "Dracarys1!",
	}
}

func TestOwnerService_Create_Success(t *testing.T) {
	fx := createTestOwnerService(t)

	ctx := context.Background()
	input := validOwnerInput()

	fx.ownerRepo.EXPECT().
		FindByEmailOrUsername(ctx, input.Email, input.Username).
		Return(nil, repository.ErrOwnerNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.ownerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	owner, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, owner)
	assert.Equal(t, input.Email, owner.Email)
	assert.Equal(t, entity.RoleOwner, owner.Role)
	assert.NotNil(t, owner.OwnerID, "a fresh owner profile id is minted on create")
}

func TestOwnerService_Create_HashesBeforePersisting(t *testing.T) {
	fx := createTestOwnerService(t)

	ctx := context.Background()
	input := validOwnerInput()

	fx.ownerRepo.EXPECT().
		FindByEmailOrUsername(ctx, input.Email, input.Username).
		Return(nil, repository.ErrOwnerNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.ownerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "hashed_password", user.PasswordHash)
			assert.NotEqual(t, input.Password, user.PasswordHash)
		}).
		Return(nil)

	_, err := fx.service.Create(ctx, input)
	require.NoError(t, err)
}

func TestOwnerService_Create_DuplicateWinsOverInvalidPayload(t *testing.T) {
	fx := createTestOwnerService(t)

	ctx := context.Background()
	// Payload is invalid in several ways, but the identity is already taken;
	// the caller sees the conflict, not the field errors.
	input := validOwnerInput()
	input.Password = "weak"
	input.Username = "rh"

	fx.ownerRepo.EXPECT().
		FindByEmailOrUsername(ctx, input.Email, input.Username).
		Return(newOwnerUser(), nil)

	owner, err := fx.service.Create(ctx, input)

	assert.Nil(t, owner)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOwnerAlreadyExists))

	var validationErr *domainerrors.ValidationError
	assert.False(t, errors.As(err, &validationErr))
}

func TestOwnerService_Create_InvalidPayloadNeverReachesRepository(t *testing.T) {
	fx := createTestOwnerService(t)

	ctx := context.Background()
	input := validOwnerInput()
	input.Password = "weak"

	fx.ownerRepo.EXPECT().
		FindByEmailOrUsername(ctx, input.Email, input.Username).
		Return(nil, repository.ErrOwnerNotFound)

	owner, err := fx.service.Create(ctx, input)

	assert.Nil(t, owner)
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "owner", validationErr.Entity())
	// No Create expectation was registered; the mock would fail the test if
	// the repository had been reached.
}

func TestOwnerService_GetOneByID_NotFound(t *testing.T) {
	fx := createTestOwnerService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.ownerRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrOwnerNotFound)

	owner, err := fx.service.GetOneByID(ctx, id)

	assert.Nil(t, owner)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOwnerNotFound))
}

func TestOwnerService_GetAll_MapsToViews(t *testing.T) {
	fx := createTestOwnerService(t)

	ctx := context.Background()
	users := []*entity.User{newOwnerUser(), newOwnerUser()}

	fx.ownerRepo.EXPECT().FindAll(ctx).Return(users, nil)

	owners, err := fx.service.GetAll(ctx)

	require.NoError(t, err)
	require.Len(t, owners, 2)
	assert.Equal(t, users[0].Email, owners[0].Email)
	assert.Equal(t, users[0].OwnerID, owners[0].OwnerID)
}

func TestOwnerService_Update_ExistenceCheckedBeforeValidation(t *testing.T) {
	fx := createTestOwnerService(t)

	ctx := context.Background()
	input := validOwnerInput()
	input.ID = uuid.New()
	input.Password = "weak" // invalid, but the owner is missing

	fx.ownerRepo.EXPECT().FindByID(ctx, input.ID).Return(nil, repository.ErrOwnerNotFound)

	owner, err := fx.service.Update(ctx, input)

	assert.Nil(t, owner)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOwnerNotFound))

	var validationErr *domainerrors.ValidationError
	assert.False(t, errors.As(err, &validationErr))
}

func TestOwnerService_Update_Success(t *testing.T) {
	fx := createTestOwnerService(t)

	ctx := context.Background()
	existing := newOwnerUser()
	input := validOwnerInput()
	input.ID = existing.ID
	input.Name = "Rhaenyra of House Targaryen"

	fx.ownerRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("new_hash", nil)
	fx.ownerRepo.EXPECT().Update(ctx, existing).Return(nil)

	owner, err := fx.service.Update(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, owner)
	assert.Equal(t, "Rhaenyra of House Targaryen", owner.Name)
}

func TestOwnerService_Delete_ReturnsPreDeleteView(t *testing.T) {
	fx := createTestOwnerService(t)

	ctx := context.Background()
	existing := newOwnerUser()

	fx.ownerRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.ownerRepo.EXPECT().Delete(ctx, existing.ID).Return(nil)

	owner, err := fx.service.Delete(ctx, existing.ID)

	require.NoError(t, err)
	require.NotNil(t, owner)
	assert.Equal(t, existing.ID, owner.ID)
	assert.Equal(t, existing.Email, owner.Email)
}

func TestOwnerService_Delete_NotFound(t *testing.T) {
	fx := createTestOwnerService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.ownerRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrOwnerNotFound)

	owner, err := fx.service.Delete(ctx, id)

	assert.Nil(t, owner)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOwnerNotFound))
}
