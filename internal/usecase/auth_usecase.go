// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"petclinic/internal/domain/entity"
)

// LoginInput defines the credentials required for a user to log in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginOutput returns the issued token and the authenticated profile.
// The User copy never carries the password hash.
type LoginOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"loggedUser"`
}

// LogoutInput defines the data required to log a user out. Authorization is
// the raw bearer header forwarded by the delivery layer.
type LogoutInput struct {
	Email         string `json:"email"`
	Authorization string `json:"-"`
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
}
