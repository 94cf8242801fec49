package associate

import (
	"context"
	"testing"

	"github.com/pmodesk/pmodesk/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssociateRepoImpl_StoreAllAndGetByTeam(t *testing.T) {
	ctx := context.Background()
	repo := NewAssociateRepo(test_utils.SetupTestDB(t))

	count, err := repo.StoreAll(ctx, []Associate{
		{EmployeeName: "Alice", EmployeeID: 101, EmployeeStatus: "Active", EmployeeDept: "D1", EmployeeTeam: "T1"},
		{EmployeeName: "Bob", EmployeeID: 102, EmployeeStatus: "Active", EmployeeDept: "D1", EmployeeTeam: "T1"},
		{EmployeeName: "Carol", EmployeeID: 103, EmployeeStatus: "Active", EmployeeDept: "D2", EmployeeTeam: "T2"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	team1, err := repo.GetByTeam(ctx, "T1")
	require.NoError(t, err)
	assert.Len(t, team1, 2)
	assert.Equal(t, "Alice", team1[0].EmployeeName)

	options, err := repo.OptionsByTeam(ctx, "T1")
	require.NoError(t, err)
	assert.Contains(t, options, Option{Label: "Bob", Value: 102})
}

func TestAssociateRepoImpl_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewAssociateRepo(test_utils.SetupTestDB(t))

	_, err := repo.StoreAll(ctx, []Associate{
		{EmployeeName: "Alice", EmployeeID: 101, EmployeeStatus: "Active", EmployeeDept: "D1", EmployeeTeam: "T1"},
	})
	require.NoError(t, err)

	stored, err := repo.GetByTeam(ctx, "T1")
	require.NoError(t, err)
	require.Len(t, stored, 1)

	stored[0].EmployeeStatus = "Resigned"
	ok, err := repo.Update(ctx, stored[0])
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, stored[0].ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, stored[0].ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
