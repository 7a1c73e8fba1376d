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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewUserService(userRepo, newTestValidator(), hasher, newDiscardLogger())

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func validUserInput(role string) *usecase.UserInput {
	return &usecase.UserInput{
		Name:     "Clinic Admin",
		Email:    "admin@petclinic.com",
		Username: "clinicadmin",
		Password: "Admin123!",
		Role:     role,
	}
}

func TestUserService_Create_AdminRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := validUserInput("ADMIN")

	fx.userRepo.EXPECT().
		FindByEmailOrUsername(ctx, input.Email, input.Username).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.Nil(t, user.OwnerID, "admin accounts carry no profile back-reference")
	assert.Nil(t, user.VetID)
	assert.Empty(t, user.PasswordHash, "returned users are sanitized")
}

func TestUserService_Create_OwnerRoleMintsProfileID(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := validUserInput("OWNER")

	fx.userRepo.EXPECT().
		FindByEmailOrUsername(ctx, input.Email, input.Username).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, entity.RoleOwner, user.Role)
	assert.NotNil(t, user.OwnerID)
	assert.Nil(t, user.VetID)
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := validUserInput("SUPERADMIN")

	fx.userRepo.EXPECT().
		FindByEmailOrUsername(ctx, input.Email, input.Username).
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.Create(ctx, input)

	assert.Nil(t, user)
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "user", validationErr.Entity())
}

func TestUserService_Create_DuplicateWinsOverInvalidPayload(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := validUserInput("BOGUS")
	input.Password = "weak"

	fx.userRepo.EXPECT().
		FindByEmailOrUsername(ctx, input.Email, input.Username).
		Return(newOwnerUser(), nil)

	user, err := fx.service.Create(ctx, input)

	assert.Nil(t, user)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_GetAll_Sanitizes(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	users := []*entity.User{newOwnerUser(), newVetUser()}

	fx.userRepo.EXPECT().FindAll(ctx).Return(users, nil)

	got, err := fx.service.GetAll(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, u := range got {
		assert.Empty(t, u.PasswordHash)
	}
}

func TestUserService_GetOneByID_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetOneByID(ctx, id)

	assert.Nil(t, user)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_Update_ExistenceCheckedBeforeValidation(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := validUserInput("ADMIN")
	input.ID = uuid.New()
	input.Password = "weak"

	fx.userRepo.EXPECT().FindByID(ctx, input.ID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.Update(ctx, input)

	assert.Nil(t, user)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_Update_RoleChange(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := newOwnerUser()
	input := validUserInput("VET")
	input.ID = existing.ID

	fx.userRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("new_hash", nil)
	fx.userRepo.EXPECT().Update(ctx, existing).Return(nil)

	user, err := fx.service.Update(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, entity.RoleVet, user.Role)
	assert.NotNil(t, user.VetID, "switching to VET mints the missing profile id")
	assert.Nil(t, user.OwnerID, "the old owner back-reference is cleared")
}

func TestUserService_Create_ClearsRoleMismatchedProfileID(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	strayID := uuid.New()
	input := validUserInput("ADMIN")
	input.OwnerID = &strayID

	fx.userRepo.EXPECT().
		FindByEmailOrUsername(ctx, input.Email, input.Username).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Nil(t, user.OwnerID, "admin accounts persist without back-references")
			assert.Nil(t, user.VetID)
		}).
		Return(nil)

	user, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Nil(t, user.OwnerID)
	assert.Nil(t, user.VetID)
}

func TestUserService_Create_OwnerNeverCarriesVetID(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	strayID := uuid.New()
	input := validUserInput("OWNER")
	input.VetID = &strayID

	fx.userRepo.EXPECT().
		FindByEmailOrUsername(ctx, input.Email, input.Username).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotNil(t, user.OwnerID)
	assert.Nil(t, user.VetID, "the vet back-reference never survives an OWNER create")
}

func TestUserService_Delete_ReturnsSanitizedPreDeleteView(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := newVetUser()

	fx.userRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.userRepo.EXPECT().Delete(ctx, existing.ID).Return(nil)

	user, err := fx.service.Delete(ctx, existing.ID)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, existing.ID, user.ID)
	assert.Empty(t, user.PasswordHash)
}
