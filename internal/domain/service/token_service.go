package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by the clinic's JWT tokens.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and parsing the signed,
// time-bound credentials handed out at login. This abstracts the details of
// token creation from the use cases.
type TokenService interface {
	// Generate creates a signed token bound to the given user identifier,
	// valid for the configured window.
	Generate(userID uuid.UUID) (string, error)

	// Parse checks the validity of a token string and returns its claims.
	Parse(tokenString string) (*Claims, error)

	// TokenTTL returns the configured validity window for issued tokens.
	TokenTTL() time.Duration
}
