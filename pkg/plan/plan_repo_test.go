package plan

import (
	"context"
	"testing"

	"github.com/pmodesk/pmodesk/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanRepo_InsertAndLookups(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewPlanRepo(db)
	ctx := context.Background()

	err := repo.InsertMCRPlanRow(ctx, map[string]any{
		"mcr_id":                     "BM-1001",
		"mcr_id_status":              "Released",
		"project_division":           "Networks",
		"project_business_unit":      "Core",
		"resource_group_description": "Core Services",
		"resource_group_id":          "RG-9",
		"planned_efforts":            120.5,
	})
	require.NoError(t, err)

	details, err := repo.DetailsByBMNumber(ctx, "BM-1001")
	require.NoError(t, err)
	assert.Equal(t, Details{MCRIDStatus: "Released", ProjectDivision: "Networks", ProjectBusinessUnit: "Core"}, details)

	_, err = repo.DetailsByBMNumber(ctx, "BM-9999")
	assert.ErrorIs(t, err, ErrPlanNotFound)

	options, err := repo.RGDOptions(ctx, "BM-1001")
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, RGDOption{ResourceGroupDescription: "Core Services", ResourceGroupID: "RG-9"}, options[0])

	rgid, err := repo.RGIDByRGD(ctx, "Core Services")
	require.NoError(t, err)
	assert.Equal(t, "RG-9", rgid)

	_, err = repo.RGIDByRGD(ctx, "Nothing")
	assert.ErrorIs(t, err, ErrRGIDNotFound)
}

func TestPlanRepo_InsertRejectsUnknownColumns(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewPlanRepo(db)
	ctx := context.Background()

	err := repo.InsertMCRPlanRow(ctx, map[string]any{"mcr_id": "BM-1", "evil; DROP TABLE mcrplan": "x"})
	assert.Error(t, err)

	err = repo.InsertMCRPlanRow(ctx, map[string]any{})
	assert.Error(t, err)
}

func TestPlanRepo_InsertPlaniswareRow(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewPlanRepo(db)
	ctx := context.Background()

	err := repo.InsertPlaniswareRow(ctx, map[string]any{
		"project_id":   "P-77",
		"project_name": "Refresh",
		"resource_id":  "R-3",
		"allocation":   0.5,
	})
	require.NoError(t, err)

	var name string
	require.NoError(t, db.QueryRow("SELECT project_name FROM planisware WHERE project_id = ?", "P-77").Scan(&name))
	assert.Equal(t, "Refresh", name)
}
