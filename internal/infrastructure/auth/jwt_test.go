package auth

import (
	"testing"
	"time"

	"github.com/curio/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests-only!",
		Expiration: time.Hour,
		Issuer:     "curio-backend",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := testService()

	token, expiresAt, err := service.GenerateToken("owner-1", "ama@example.com", "Ama")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", claims.OwnerID())
	assert.Equal(t, "ama@example.com", claims.Email)
	assert.Equal(t, "Ama", claims.Name)
	assert.Equal(t, "curio-backend", claims.Issuer)
}

func TestJWTService_GenerateToken_RequiresSubject(t *testing.T) {
	service := testService()
	_, _, err := service.GenerateToken("", "", "")
	assert.ErrorIs(t, err, ErrMissingSubject)
}

func TestJWTService_ValidateToken_Rejections(t *testing.T) {
	service := testService()

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:     "a-completely-different-secret-value!",
			Expiration: time.Hour,
			Issuer:     "curio-backend",
		})
		token, _, err := other.GenerateToken("owner-1", "", "")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:     "test-secret-key-for-unit-tests-only!",
			Expiration: time.Hour,
			Issuer:     "someone-else",
		})
		token, _, err := other.GenerateToken("owner-1", "", "")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewJWTService(config.JWTConfig{
			Secret:     "test-secret-key-for-unit-tests-only!",
			Expiration: -time.Minute,
			Issuer:     "curio-backend",
		})
		token, _, err := expired.GenerateToken("owner-1", "", "")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
