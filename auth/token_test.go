package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/student-showcase/portfolio-backend/models"
)

func testUser() *models.User {
	return &models.User{
		ID:    42,
		Email: "admin@example.com",
		Roles: []string{models.RoleAdmin, models.RoleUser},
	}
}

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	token, err := manager.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Verify(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.True(t, claims.IsAdmin())
	assert.True(t, claims.HasRole(models.RoleUser))
	assert.False(t, claims.HasRole("ROLE_SUPERVISOR"))
}

func TestTokenWrongSecretRejected(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).Issue(testUser())
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestTokenExpiryRejected(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Minute)

	token, err := manager.Issue(testUser())
	require.NoError(t, err)

	_, err = manager.Verify(token)
	assert.Error(t, err)
}

func TestTokenGarbageRejected(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)
	_, err := manager.Verify("not.a.token")
	assert.Error(t, err)
}
