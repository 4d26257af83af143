package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drink-retail-manager/internal/models"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := createTestUser(t, db, "jgonzalez")
	assert.NotZero(t, user.ID)
	assert.NotEmpty(t, user.CreatedAt)

	byName, err := repo.GetByUsername("jgonzalez")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
	assert.Equal(t, models.RoleWorker, byName.Role)

	byID, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "jgonzalez", byID.Username)

	_, err = repo.GetByUsername("nobody")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	createTestUser(t, db, "jgonzalez")

	err := repo.Create(&models.User{
		Username:     "jgonzalez",
		PasswordHash: "hash",
		Role:         models.RoleWorker,
	})
	assert.Error(t, err)
}

func TestUserRepository_StampTimes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := createTestUser(t, db, "jgonzalez")
	assert.Empty(t, user.LastLogin)

	require.NoError(t, repo.UpdateLastLogin(user.ID))
	require.NoError(t, repo.UpdateLastLogout(user.ID))

	loaded, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, loaded.LastLogin)
	assert.NotEmpty(t, loaded.LastLogout)

	assert.ErrorIs(t, repo.UpdateLastLogin(9999), models.ErrUserNotFound)
}

func TestUserRepository_UpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := createTestUser(t, db, "jgonzalez")

	user.Email = "j@example.com"
	user.Role = models.RoleAdmin
	require.NoError(t, repo.Update(user))

	loaded, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "j@example.com", loaded.Email)
	assert.Equal(t, models.RoleAdmin, loaded.Role)

	require.NoError(t, repo.Delete(user.ID))
	_, err = repo.GetByID(user.ID)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
	assert.ErrorIs(t, repo.Delete(user.ID), models.ErrUserNotFound)
}
