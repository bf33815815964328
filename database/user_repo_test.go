package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/student-showcase/portfolio-backend/models"
)

func mustAddUser(t *testing.T, db Database, email string, roles []string) *models.User {
	t.Helper()
	user := &models.User{
		Email:     email,
		Password:  "$2a$10$irrelevantforthistest",
		FirstName: "Test",
		LastName:  "Account",
		Roles:     roles,
		IsActive:  true,
	}
	require.NoError(t, db.UserRepo().Add(user))
	return user
}

func TestUserAddNormalizesRoles(t *testing.T) {
	db := newTestDatabase(t)
	user := mustAddUser(t, db, "admin@example.com", []string{models.RoleAdmin})

	loaded, err := db.UserRepo().FindByID(user.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{models.RoleAdmin, models.RoleUser}, loaded.Roles)
	assert.True(t, loaded.IsAdmin())
}

func TestUserFindByEmail(t *testing.T) {
	db := newTestDatabase(t)
	mustAddUser(t, db, "someone@example.com", nil)

	loaded, err := db.UserRepo().FindByEmail("someone@example.com")
	require.NoError(t, err)
	assert.Equal(t, "someone@example.com", loaded.Email)

	_, err = db.UserRepo().FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserDuplicateEmailRejected(t *testing.T) {
	db := newTestDatabase(t)
	mustAddUser(t, db, "someone@example.com", nil)

	duplicate := &models.User{
		Email:     "someone@example.com",
		Password:  "x",
		FirstName: "Other",
		LastName:  "Account",
	}
	assert.Error(t, db.UserRepo().Add(duplicate))

	count, err := db.UserRepo().Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUserDelete(t *testing.T) {
	db := newTestDatabase(t)
	user := mustAddUser(t, db, "someone@example.com", nil)

	require.NoError(t, db.UserRepo().Delete(user.ID))
	_, err := db.UserRepo().FindByID(user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
