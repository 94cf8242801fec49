package report

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pmodesk/pmodesk/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAssociate(t *testing.T, db *sql.DB, name string, empNo int, dept, team string) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO associates (employee_name, employee_id, employee_status, employee_dept, employee_team) VALUES (?, ?, 'Active', ?, ?)",
		name, empNo, dept, team,
	)
	require.NoError(t, err)
}

func seedMCR(t *testing.T, db *sql.DB, empNo int, hours float64, month, team string) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO mcrbilling (pmo_month, empno, hours, cteam) VALUES (?, ?, ?, ?)",
		month, empNo, hours, team,
	)
	require.NoError(t, err)
}

func seedNonMCR(t *testing.T, db *sql.DB, name string, empNo int, hours float64, pmo any, month, group, team string) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO nonmcrbilling (pmo_month, employeename, empno, hours, pmo, cgroup, cteam) VALUES (?, ?, ?, ?, ?, ?, ?)",
		month, name, empNo, hours, pmo, group, team,
	)
	require.NoError(t, err)
}

func TestReportRepo_UnbilledRosterWithNoRecords(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewReportRepo(db)
	ctx := context.Background()
	seedAssociate(t, db, "John Smith", 1, "D1", "T1")

	filter := Filter{Group: "D1", Month: "2024-01", Source: SourceMCR}

	billed, err := repo.Billed(ctx, filter)
	require.NoError(t, err)
	assert.Empty(t, billed)

	unbilled, err := repo.Unbilled(ctx, filter)
	require.NoError(t, err)
	require.Len(t, unbilled, 1)
	assert.Equal(t, "John Smith", unbilled[0].EmployeeName)
	assert.Equal(t, "MCR", unbilled[0].BillingType)
	assert.Nil(t, unbilled[0].Hours)
	assert.Nil(t, unbilled[0].Month)
}

func TestReportRepo_AllKeepsBillingTypesSeparate(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewReportRepo(db)
	ctx := context.Background()
	seedAssociate(t, db, "John Smith", 1, "D1", "T1")
	seedMCR(t, db, 1, 100, "2024-01", "T1")
	seedNonMCR(t, db, "John Smith", 1, 60, nil, "2024-01", "D1", "T1")

	result, err := repo.Billed(ctx, Filter{Month: "2024-01", Source: SourceAll})
	require.NoError(t, err)
	require.Len(t, result, 2)

	byType := make(map[string]float64)
	for _, row := range result {
		assert.Equal(t, "John Smith", row.EmployeeName)
		byType[row.BillingType] = row.Hours
	}
	assert.Equal(t, float64(100), byType["MCR"])
	assert.Equal(t, float64(60), byType["Non-MCR"])
}

func TestReportRepo_BilledAndUnbilledAreDisjoint(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewReportRepo(db)
	ctx := context.Background()
	seedAssociate(t, db, "John Smith", 1, "D1", "T1")
	seedAssociate(t, db, "Anu Kaur", 2, "D1", "T1")
	seedMCR(t, db, 1, 80, "2024-01", "T1")
	seedMCR(t, db, 1, 20, "2024-01", "T1")

	filter := Filter{Month: "2024-01", Source: SourceMCR}

	billed, err := repo.Billed(ctx, filter)
	require.NoError(t, err)
	unbilled, err := repo.Unbilled(ctx, filter)
	require.NoError(t, err)

	require.Len(t, billed, 1)
	assert.Equal(t, "John Smith", billed[0].EmployeeName)
	assert.Equal(t, float64(100), billed[0].Hours)

	require.Len(t, unbilled, 1)
	assert.Equal(t, "Anu Kaur", unbilled[0].EmployeeName)

	billedNames := map[string]bool{}
	for _, row := range billed {
		billedNames[row.EmployeeName] = true
	}
	for _, row := range unbilled {
		assert.False(t, billedNames[row.EmployeeName])
	}
}

func TestReportRepo_AllUnbilledIsUnionOfPerTypeSets(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewReportRepo(db)
	ctx := context.Background()
	seedAssociate(t, db, "John Smith", 1, "D1", "T1")
	seedMCR(t, db, 1, 40, "2024-01", "T1")

	unbilled, err := repo.Unbilled(ctx, Filter{Month: "2024-01", Source: SourceAll})
	require.NoError(t, err)

	// Billed only as MCR: excluded from the MCR leg, still eligible for
	// the non-MCR leg.
	require.Len(t, unbilled, 1)
	assert.Equal(t, "John Smith", unbilled[0].EmployeeName)
	assert.Equal(t, "Non-MCR", unbilled[0].BillingType)
}

func TestReportRepo_UnbilledScopedToRequestedMonth(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewReportRepo(db)
	ctx := context.Background()
	seedAssociate(t, db, "John Smith", 1, "D1", "T1")
	seedMCR(t, db, 1, 156, "2024-02", "T1")

	unbilled, err := repo.Unbilled(ctx, Filter{Month: "2024-01", Source: SourceMCR})
	require.NoError(t, err)
	require.Len(t, unbilled, 1)
	assert.Equal(t, "John Smith", unbilled[0].EmployeeName)

	unbilled, err = repo.Unbilled(ctx, Filter{Month: "2024-02", Source: SourceMCR})
	require.NoError(t, err)
	assert.Empty(t, unbilled)
}

func TestReportRepo_UnbilledRestrictedByGroupAndTeam(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewReportRepo(db)
	ctx := context.Background()
	seedAssociate(t, db, "John Smith", 1, "D1", "T1")
	seedAssociate(t, db, "Anu Kaur", 2, "D2", "T2")

	unbilled, err := repo.Unbilled(ctx, Filter{Group: "D1", Team: "T1", Month: "2024-01", Source: SourceMCR})
	require.NoError(t, err)
	require.Len(t, unbilled, 1)
	assert.Equal(t, "John Smith", unbilled[0].EmployeeName)
}

func TestReportRepo_UnderAllocated(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewReportRepo(db)
	ctx := context.Background()
	seedAssociate(t, db, "No Record", 1, "D1", "T1")
	seedNonMCR(t, db, "Partial", 2, 80, 0.5, "2024-01", "G1", "T1")
	seedNonMCR(t, db, "Full", 3, 156, 1.0, "2024-01", "G1", "T1")
	seedNonMCR(t, db, "Negative", 4, 10, -0.5, "2024-01", "G1", "T1")
	seedNonMCR(t, db, "OtherTeam", 5, 40, 0.5, "2024-01", "G1", "T2")

	rows, err := repo.UnderAllocated(ctx, "2024-01", "G1", "T1")
	require.NoError(t, err)

	names := map[string]bool{}
	for _, row := range rows {
		names[row.EmployeeName] = true
	}
	// Half-open ratio window: 0 <= pmo < 1.0. Fully allocated and negative
	// ratios stay out; roster entries with no record at all come in.
	assert.True(t, names["No Record"])
	assert.True(t, names["Partial"])
	assert.False(t, names["Full"])
	assert.False(t, names["Negative"])
	assert.False(t, names["OtherTeam"])

	// Widened to the whole group when no team is given.
	rows, err = repo.UnderAllocated(ctx, "2024-01", "G1", "")
	require.NoError(t, err)
	names = map[string]bool{}
	for _, row := range rows {
		names[row.EmployeeName] = true
	}
	assert.True(t, names["Partial"])
	assert.True(t, names["OtherTeam"])
}

func TestReportRepo_UnderAllocatedCounts(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewReportRepo(db)
	ctx := context.Background()
	seedAssociate(t, db, "No Record", 1, "D1", "T1")
	seedAssociate(t, db, "Also None", 2, "D1", "T1")
	seedNonMCR(t, db, "Partial", 3, 80, 0.5, "2024-01", "G1", "T1")

	counts, err := repo.UnderAllocatedCounts(ctx, "2024-01", "G1", "T1")
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, "T1", counts[0].EmployeeTeam)
	assert.Equal(t, 3, counts[0].Count)
}
