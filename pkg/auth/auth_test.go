package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbnb-evolution/backend/pkg/auth"
)

func TestHasher_HashAndVerify(t *testing.T) {
	hasher := auth.NewHasher(4)

	hashed, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hashed)

	assert.True(t, hasher.Verify(hashed, "secret123"))
	assert.False(t, hasher.Verify(hashed, "wrong"))
}

func TestHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := auth.NewHasher(99)

	hashed, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.True(t, hasher.Verify(hashed, "secret123"))
}

func TestTokenManager_GenerateAndParse(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", time.Hour)

	token, err := manager.Generate("user-1", true)
	require.NoError(t, err)

	claims, err := manager.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.True(t, claims.IsAdmin)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", time.Hour)
	other := auth.NewTokenManager("other-secret", time.Hour)

	token, err := manager.Generate("user-1", false)
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", -time.Minute)

	token, err := manager.Generate("user-1", false)
	require.NoError(t, err)

	_, err = manager.Parse(token)
	assert.Error(t, err)
}
