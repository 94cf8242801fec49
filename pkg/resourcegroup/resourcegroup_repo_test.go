package resourcegroup

import (
	"context"
	"testing"

	"github.com/pmodesk/pmodesk/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceGroupRepo_CRUD(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewResourceGroupRepo(db)
	ctx := context.Background()

	id, err := repo.Store(ctx, ResourceGroup{BMNumber: "BM-1001", RGID: "RG-9", RGD: "Core Services", Username: "jsmith"})
	require.NoError(t, err)
	assert.Greater(t, id, 0)

	groups, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, ResourceGroup{ID: id, BMNumber: "BM-1001", RGID: "RG-9", RGD: "Core Services", Username: "jsmith"}, groups[0])

	ok, err := repo.Update(ctx, ResourceGroup{ID: id, BMNumber: "BM-1002", RGID: "RG-10", RGD: "Edge Services"})
	require.NoError(t, err)
	assert.True(t, ok)

	groups, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "BM-1002", groups[0].BMNumber)
	// The submitter is preserved across updates.
	assert.Equal(t, "jsmith", groups[0].Username)

	ok, err = repo.Update(ctx, ResourceGroup{ID: 9999})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)

	groups, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, groups)
}
