package impl

import (
	"context"
	"testing"

	domainerrors "petclinic/internal/domain/errors"
	"petclinic/internal/domain/repository"
	mockRepo "petclinic/internal/mocks/repository"
	mockSvc "petclinic/internal/mocks/service"
	"petclinic/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
	tokens   *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)

	service := NewAuthService(userRepo, hasher, tokens, newDiscardLogger())

	return authServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newOwnerUser()
	input := &usecase.LoginInput{Email: user.Email, Password: "Dracarys1!"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokens.EXPECT().Generate(user.ID).Return("signed-token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, user.ID, output.User.ID)
	assert.Empty(t, output.User.PasswordHash, "login response must not leak the password hash")
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "nobody@dragonstone.com", Password: "Dracarys1!"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newOwnerUser()
	input := &usecase.LoginInput{Email: user.Email, Password: "wrong-password"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserUnauthorized))
}

func TestAuthService_Login_RepositoryFault(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "rhaenyra@dragonstone.com", Password: "Dracarys1!"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, errors.New("connection reset"))

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknown), "internal faults are masked")
	assert.False(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_Login_TokenMintFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newOwnerUser()
	input := &usecase.LoginInput{Email: user.Email, Password: "Dracarys1!"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokens.EXPECT().Generate(user.ID).Return("", errors.New("signing failed"))

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknown))
}

func TestAuthService_Logout_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newOwnerUser()
	input := &usecase.LogoutInput{
		Email:         user.Email,
		Authorization: "Bearer some-valid-token",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tokens.EXPECT().Parse("some-valid-token").Return(nil, nil)

	assert.NoError(t, fx.service.Logout(ctx, input))
}

func TestAuthService_Logout_StaleTokenStillLogsOut(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newOwnerUser()
	input := &usecase.LogoutInput{
		Email:         user.Email,
		Authorization: "Bearer expired-token",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tokens.EXPECT().Parse("expired-token").Return(nil, errors.New("token is expired"))

	assert.NoError(t, fx.service.Logout(ctx, input))
}

func TestAuthService_Logout_MissingBearer(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newOwnerUser()
	input := &usecase.LogoutInput{Email: user.Email, Authorization: ""}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	err := fx.service.Logout(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserUnauthorized))
}

func TestAuthService_Logout_UserNotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LogoutInput{
		Email:         "nobody@dragonstone.com",
		Authorization: "Bearer some-token",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	err := fx.service.Logout(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
