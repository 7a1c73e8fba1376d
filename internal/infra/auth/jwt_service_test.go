package auth

import (
	"testing"
	"time"

	"petclinic/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testTokenConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Token = "test_token_secret_key_very_long_for_testing"
	cfg.Auth = &config.AuthConfig{TokenTTL: ttl}

	return cfg
}

func TestJWTService_GenerateAndParse(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig(2 * time.Hour))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.Generate(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Parse(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)

	// Expiry should sit at roughly now + TTL.
	assert.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{TokenTTL: time.Hour}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig(time.Hour))
	assert.NoError(t, err)

	claims, err := jwtService.Parse("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig(-time.Minute))
	assert.NoError(t, err)

	userID := uuid.New()
	token, err := jwtService.Generate(userID)
	assert.NoError(t, err)

	claims, err := jwtService.Parse(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testTokenConfig(time.Hour))
	assert.NoError(t, err)

	otherCfg := testTokenConfig(time.Hour)
	otherCfg.SecretKey.Token = "a_completely_different_secret_key_value"
	verifier, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	token, err := issuer.Generate(uuid.New())
	assert.NoError(t, err)

	claims, err := verifier.Parse(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_TokenTTL(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig(2 * time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, 2*time.Hour, jwtService.TokenTTL())
}
