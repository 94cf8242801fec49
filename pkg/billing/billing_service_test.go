package billing

import (
	"context"
	"testing"

	"github.com/pmodesk/pmodesk/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveMCR_StampsSubmitter(t *testing.T) {
	mcrRepo := NewStubMCRRepo()
	service := NewBillingService(mcrRepo, NewStubNonMCRRepo())
	ctx := auth.WithIdentity(context.Background(), auth.Identity{UserID: 7, Username: "jsmith"})

	id, err := service.SaveMCR(ctx, MCRBilling{AssociateName: "John Smith", EmpNo: 100, Hours: 40, Month: "2024-03", Team: "Platform"})

	require.NoError(t, err)
	assert.Equal(t, "jsmith", mcrRepo.records[id].Username)
}

func TestSaveNonMCR_StampsSubmitter(t *testing.T) {
	nonMCRRepo := NewStubNonMCRRepo()
	service := NewBillingService(NewStubMCRRepo(), nonMCRRepo)
	ctx := auth.WithIdentity(context.Background(), auth.Identity{UserID: 3, Username: "akaur"})

	id, err := service.SaveNonMCR(ctx, NonMCRBilling{EmployeeName: "Anu Kaur", EmpNo: 200, Hours: 20, Month: "2024-03"})

	require.NoError(t, err)
	assert.Equal(t, "akaur", nonMCRRepo.records[id].Username)
}

func TestRemainingMCRHours(t *testing.T) {
	tests := []struct {
		name     string
		hours    []float64
		expected float64
	}{
		{name: "no billing yet", hours: nil, expected: 156},
		{name: "partially billed", hours: []float64{40, 60}, expected: 56},
		{name: "fully billed", hours: []float64{156}, expected: 0},
		{name: "over ceiling clamps to zero", hours: []float64{120, 80}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mcrRepo := NewStubMCRRepo()
			service := NewBillingService(mcrRepo, NewStubNonMCRRepo())
			ctx := context.Background()
			for _, h := range tt.hours {
				_, err := mcrRepo.Store(ctx, MCRBilling{EmpNo: 100, Month: "2024-03", Hours: h})
				require.NoError(t, err)
			}

			remaining, err := service.RemainingMCRHours(ctx, 100, "2024-03")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, remaining)
		})
	}
}

func TestRemainingHours_IgnoresOtherMonthsAndAssociates(t *testing.T) {
	mcrRepo := NewStubMCRRepo()
	service := NewBillingService(mcrRepo, NewStubNonMCRRepo())
	ctx := context.Background()
	_, err := mcrRepo.Store(ctx, MCRBilling{EmpNo: 100, Month: "2024-02", Hours: 156})
	require.NoError(t, err)
	_, err = mcrRepo.Store(ctx, MCRBilling{EmpNo: 101, Month: "2024-03", Hours: 156})
	require.NoError(t, err)

	remaining, err := service.RemainingMCRHours(ctx, 100, "2024-03")

	require.NoError(t, err)
	assert.Equal(t, float64(156), remaining)
}

func TestRemainingHours_TrackedSeparatelyPerBillingType(t *testing.T) {
	mcrRepo := NewStubMCRRepo()
	nonMCRRepo := NewStubNonMCRRepo()
	service := NewBillingService(mcrRepo, nonMCRRepo)
	ctx := context.Background()
	_, err := mcrRepo.Store(ctx, MCRBilling{EmpNo: 100, Month: "2024-03", Hours: 156})
	require.NoError(t, err)

	mcrRemaining, err := service.RemainingMCRHours(ctx, 100, "2024-03")
	require.NoError(t, err)
	nonMCRRemaining, err := service.RemainingNonMCRHours(ctx, 100, "2024-03")
	require.NoError(t, err)

	assert.Equal(t, float64(0), mcrRemaining)
	assert.Equal(t, float64(156), nonMCRRemaining)
}

func TestAggregateMCRHours_SumsPerAssociateAndMonth(t *testing.T) {
	mcrRepo := NewStubMCRRepo()
	service := NewBillingService(mcrRepo, NewStubNonMCRRepo())
	ctx := context.Background()
	_, err := mcrRepo.Store(ctx, MCRBilling{AssociateName: "John Smith", Month: "2024-03", Hours: 40})
	require.NoError(t, err)
	_, err = mcrRepo.Store(ctx, MCRBilling{AssociateName: "John Smith", Month: "2024-03", Hours: 16})
	require.NoError(t, err)
	_, err = mcrRepo.Store(ctx, MCRBilling{AssociateName: "John Smith", Month: "2024-04", Hours: 8})
	require.NoError(t, err)

	rows, err := service.AggregateMCRHours(ctx)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	byMonth := make(map[string]float64)
	for _, row := range rows {
		assert.Equal(t, "John Smith", row.AssociateName)
		byMonth[row.Month] = row.Hours
	}
	assert.Equal(t, float64(56), byMonth["2024-03"])
	assert.Equal(t, float64(8), byMonth["2024-04"])
}
