// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "petclinic/internal/delivery/context"
	domainerrors "petclinic/internal/domain/errors"
	"petclinic/internal/domain/repository"
	"petclinic/internal/domain/service"
	"petclinic/internal/errors"
	"petclinic/internal/usecase"
)

// authService implements the AuthUsecase interface. It performs no persistent
// side effects: login is a credential check plus a token mint.
type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokens   service.TokenService
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials and issues a signed, time-bound token.
// NotFound and Unauthorized outcomes stay typed; only unexpected internal
// failures are masked behind ErrUnknown.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, user not found", slog.String("email", input.Email))

			return nil, domainerrors.ErrUserNotFound.WrapMessage("login failed")
		}
		srv.log(ctx).Error("Failed to load user for login", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrUnknown.WrapMessage("failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("email", input.Email))

		return nil, domainerrors.ErrUserUnauthorized.WrapMessage("login failed")
	}

	token, err := srv.tokens.Generate(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue login token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrUnknown.WrapMessage("failed to issue login token")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Token: token,
		User:  user.Sanitized(),
	}, nil
}

// Logout checks that the account exists and that a bearer credential was
// presented. The issued token itself stays valid until its window expires:
// the tokens are stateless and no revocation list exists at this layer.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Debug("Starting logout", slog.String("email", input.Email))

	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("logout failed")
		}
		srv.log(ctx).Error("Failed to load user for logout", slog.String("email", input.Email), slog.Any("error", err))

		return domainerrors.ErrUnknown.WrapMessage("failed to load user for logout")
	}

	bearer := bearerToken(input.Authorization)
	if bearer == "" {
		return domainerrors.ErrUserUnauthorized.WrapMessage("logout requires a bearer credential")
	}

	if _, err := srv.tokens.Parse(bearer); err != nil {
		// A stale or malformed token still logs out; the credential check
		// above is the contract.
		srv.log(ctx).Warn("Logout with unparsable token", slog.String("email", input.Email), slog.Any("error", err))
	}

	srv.log(ctx).Debug("User logged out", slog.String("email", input.Email))

	return nil
}

// bearerToken extracts the credential from an Authorization header value.
func bearerToken(authorization string) string {
	token := strings.TrimPrefix(authorization, "Bearer ")
	if token == authorization {
		return ""
	}

	return strings.TrimSpace(token)
}
