// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"petclinic/config"
	"petclinic/internal/domain/service"
)

const claimUserID = "userID"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   string
	tokenTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:   cfg.SecretKey.Token,
		tokenTTL: cfg.Auth.TokenTTL,
	}, nil
}

// Generate creates a signed token bound to the given user identifier.
func (s *jwtService) Generate(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		claimUserID: userID.String(),
		"iat":       now.Unix(),
		"exp":       now.Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Parse checks the validity of a token string and extracts its claims.
func (s *jwtService) Parse(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	rawUserID, ok := mapClaims[claimUserID].(string)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return nil, jwt.ErrTokenInvalidClaims
	}

	claims := &service.Claims{UserID: userID}
	if exp, expErr := mapClaims.GetExpirationTime(); expErr == nil && exp != nil {
		claims.ExpiresAt = exp
	}
	if iat, iatErr := mapClaims.GetIssuedAt(); iatErr == nil && iat != nil {
		claims.IssuedAt = iat
	}

	return claims, nil
}

// TokenTTL returns the configured validity window for issued tokens.
func (s *jwtService) TokenTTL() time.Duration {
	return s.tokenTTL
}
