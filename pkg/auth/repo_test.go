package auth

import (
	"context"
	"testing"

	"github.com/pmodesk/pmodesk/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepoImpl_Admin(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(test_utils.SetupTestDB(t))

	id, err := repo.StoreAdmin(ctx, "admin", "hash")
	require.NoError(t, err)
	assert.Greater(t, id, 0)

	admin, err := repo.FindAdminByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, id, admin.ID)
	assert.Equal(t, "hash", admin.PasswordHash)

	_, err = repo.FindAdminByUsername(ctx, "missing")
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestRepoImpl_User(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(test_utils.SetupTestDB(t))

	id, err := repo.StoreUser(ctx, User{Username: "jdoe", Department: "D1", Group: "G1"})
	require.NoError(t, err)

	byName, err := repo.FindUserByUsername(ctx, "jdoe")
	require.NoError(t, err)
	assert.Equal(t, id, byName.ID)
	assert.Equal(t, "G1", byName.Group)

	byID, err := repo.FindUserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, byName, byID)
}
