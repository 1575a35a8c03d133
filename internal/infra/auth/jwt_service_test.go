package auth

import (
	"testing"
	"time"

	"ratehub/config"
	"ratehub/internal/domain/entity"
	"ratehub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	tokenSvc, err := NewJWTService(newTestJWTConfig("test_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	require.NotNil(t, tokenSvc)

	userID := uuid.New()

	token, err := tokenSvc.Generate(userID, entity.RoleStoreOwner)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokenSvc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleStoreOwner, claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	tokenSvc, err := NewJWTService(newTestJWTConfig("test_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := tokenSvc.Validate("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("issuer_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("different_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := issuer.Generate(uuid.New(), entity.RoleUser)
	require.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	secret := "test_secret_key_very_long_for_testing"
	tokenSvc, err := NewJWTService(newTestJWTConfig(secret))
	require.NoError(t, err)

	// Sign a token that expired an hour ago with the same secret.
	expired := &service.Claims{
		UserID: uuid.New(),
		Role:   entity.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte(secret))
	require.NoError(t, err)

	claims, err := tokenSvc.Validate(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	tokenSvc, err := NewJWTService(newTestJWTConfig(""))
	assert.Error(t, err)
	assert.Nil(t, tokenSvc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
