package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldops/installation-service/internal/auth"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", 5)

	token, claims, err := tm.GenerateToken("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), claims.ExpiresAt.Time, 5*time.Second)

	parsed, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.UserID)
	assert.Equal(t, claims.ID, parsed.ID)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", 5)
	other := auth.NewTokenManager("other-secret", 5)

	token, _, err := tm.GenerateToken("user-1")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", 5)

	_, err := tm.ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestHashPassword_Verifies(t *testing.T) {
	hash, err := auth.HashPassword("testpass123", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "testpass123", hash)

	assert.NoError(t, auth.ComparePassword(hash, "testpass123"))
	assert.Error(t, auth.ComparePassword(hash, "wrongpass"))
}
