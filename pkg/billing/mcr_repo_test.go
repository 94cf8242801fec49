package billing

import (
	"context"
	"testing"

	"github.com/pmodesk/pmodesk/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCRRepo_StoreAndGetByTeam(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewMCRRepo(db)
	ctx := context.Background()

	record := MCRBilling{
		Month:         "2024-03",
		BMNumber:      "BM-1001",
		TaskID:        "T-1",
		RGID:          "RG-9",
		RGD:           "Core Services",
		WStatus:       "Active",
		PD:            "PD-A",
		PBU:           "Networks",
		Company:       "Acme",
		AssociateName: "John Smith",
		EmpNo:         100,
		Hours:         40,
		PMO:           0.5,
		PIF:           "PIF-7",
		BillingStatus: "Billed",
		Remarks:       "march cycle",
		Username:      "jsmith",
		Team:          "Platform",
	}
	id, err := repo.Store(ctx, record)
	require.NoError(t, err)
	assert.Greater(t, id, 0)

	records, err := repo.GetByTeam(ctx, "Platform")
	require.NoError(t, err)
	require.Len(t, records, 1)
	record.ID = id
	assert.Equal(t, record, records[0])

	other, err := repo.GetByTeam(ctx, "Mobility")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMCRRepo_UpdateAndDelete(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewMCRRepo(db)
	ctx := context.Background()

	id, err := repo.Store(ctx, MCRBilling{Month: "2024-03", AssociateName: "John Smith", EmpNo: 100, Hours: 40, Team: "Platform"})
	require.NoError(t, err)

	ok, err := repo.Update(ctx, MCRBilling{ID: id, Month: "2024-03", AssociateName: "John Smith", EmpNo: 100, Hours: 56, BillingStatus: "Billed", Team: "Platform"})
	require.NoError(t, err)
	assert.True(t, ok)

	records, err := repo.GetByTeam(ctx, "Platform")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, float64(56), records[0].Hours)
	assert.Equal(t, "Billed", records[0].BillingStatus)

	ok, err = repo.Update(ctx, MCRBilling{ID: 9999, Month: "2024-03"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)

	records, err = repo.GetByTeam(ctx, "Platform")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestMCRRepo_SumHours(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewMCRRepo(db)
	ctx := context.Background()

	for _, record := range []MCRBilling{
		{Month: "2024-03", EmpNo: 100, Hours: 40, Team: "Platform"},
		{Month: "2024-03", EmpNo: 100, Hours: 16, Team: "Platform"},
		{Month: "2024-04", EmpNo: 100, Hours: 80, Team: "Platform"},
		{Month: "2024-03", EmpNo: 101, Hours: 156, Team: "Platform"},
	} {
		_, err := repo.Store(ctx, record)
		require.NoError(t, err)
	}

	sum, err := repo.SumHours(ctx, 100, "2024-03")
	require.NoError(t, err)
	assert.Equal(t, float64(56), sum)

	sum, err = repo.SumHours(ctx, 102, "2024-03")
	require.NoError(t, err)
	assert.Equal(t, float64(0), sum)
}

func TestNonMCRRepo_RoundTrip(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewNonMCRRepo(db)
	ctx := context.Background()

	record := NonMCRBilling{
		Month:            "2024-03",
		PIF:              "PIF-3",
		PONumber:         "PO-55",
		ContractNo:       "C-12",
		LegalCompany:     "Acme GmbH",
		CustCoordDetails: "weekly sync",
		EmployeeName:     "Anu Kaur",
		EmpNo:            200,
		Onsite:           "No",
		Hours:            20,
		PMO:              0.25,
		SONumber:         "SO-77",
		SDCStatus:        "Open",
		SOStatus:         "Approved",
		SOText:           "maintenance",
		Remarks:          "",
		Username:         "akaur",
		Team:             "Platform",
		Group:            "Engineering",
	}
	id, err := repo.Store(ctx, record)
	require.NoError(t, err)

	records, err := repo.GetByTeam(ctx, "Platform")
	require.NoError(t, err)
	require.Len(t, records, 1)
	record.ID = id
	assert.Equal(t, record, records[0])

	ok, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)
}
