package auth

import (
	"testing"
	"time"

	"padifood/config"
	"padifood/internal/domain/entity"
	domainerrors "padifood/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig(tokenTTL time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{TokenTTL: tokenTTL},
	}
	cfg.SecretKey.Token = "test_token_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_SignAndVerify(t *testing.T) {
	jwtService := NewJWTService(testJWTConfig(time.Hour))

	user := &entity.User{
		ID:    uuid.New(),
		Email: "ada@example.com",
		Role:  entity.RoleAdmin,
	}

	token, err := jwtService.Sign(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestJWTService_VerifyMalformedToken(t *testing.T) {
	jwtService := NewJWTService(testJWTConfig(time.Hour))

	claims, err := jwtService.Verify("clearly-not-a-jwt-token-format")

	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_VerifyExpiredToken(t *testing.T) {
	jwtService := NewJWTService(testJWTConfig(-time.Minute))

	user := &entity.User{
		ID:    uuid.New(),
		Email: "ada@example.com",
		Role:  entity.RoleUser,
	}

	token, err := jwtService.Sign(user)
	require.NoError(t, err)

	claims, err := jwtService.Verify(token)

	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_VerifyWrongSecret(t *testing.T) {
	signer := NewJWTService(testJWTConfig(time.Hour))

	otherCfg := testJWTConfig(time.Hour)
	otherCfg.SecretKey.Token = "a_completely_different_secret_key_for_testing"
	verifier := NewJWTService(otherCfg)

	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", Role: entity.RoleUser}

	token, err := signer.Sign(user)
	require.NoError(t, err)

	claims, err := verifier.Verify(token)

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_SignWithoutSecret(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{}}
	jwtService := NewJWTService(cfg)

	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", Role: entity.RoleUser}

	token, err := jwtService.Sign(user)

	assert.Error(t, err)
	assert.Empty(t, token)
	assert.True(t, errors.Is(err, domainerrors.ErrConfiguration))
}

func TestJWTService_SignWithoutUserID(t *testing.T) {
	jwtService := NewJWTService(testJWTConfig(time.Hour))

	token, err := jwtService.Sign(&entity.User{Email: "ada@example.com"})

	assert.Error(t, err)
	assert.Empty(t, token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidUser))
}
