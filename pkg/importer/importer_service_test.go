package importer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pmodesk/pmodesk/pkg/plan"
)

type recordingPlanRepo struct {
	mcrRows        []map[string]any
	planiswareRows []map[string]any
	failOn         string
}

func (r *recordingPlanRepo) InsertMCRPlanRow(ctx context.Context, row map[string]any) error {
	if r.failOn != "" && row["mcr_id"] == r.failOn {
		return errors.New("constraint violation")
	}
	r.mcrRows = append(r.mcrRows, row)
	return nil
}

func (r *recordingPlanRepo) InsertPlaniswareRow(ctx context.Context, row map[string]any) error {
	r.planiswareRows = append(r.planiswareRows, row)
	return nil
}

func (r *recordingPlanRepo) DetailsByBMNumber(ctx context.Context, bmNumber string) (plan.Details, error) {
	panic("not used")
}

func (r *recordingPlanRepo) RGDOptions(ctx context.Context, bmNumber string) ([]plan.RGDOption, error) {
	panic("not used")
}

func (r *recordingPlanRepo) RGIDByRGD(ctx context.Context, rgd string) (string, error) {
	panic("not used")
}

func sheetFile(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	workbook := excelize.NewFile()
	defer workbook.Close()
	sheet := workbook.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, workbook.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, workbook.Write(&buf))
	return &buf
}

func TestImportMCRPlan_MapsRecognizedHeaders(t *testing.T) {
	repo := &recordingPlanRepo{}
	service := NewImportService(repo)

	file := sheetFile(t, [][]any{
		{"MCR ID", "MCR ID Status", "Mystery Column", "Planned Efforts"},
		{"BM-1001", "Released", "ignored", 120.5},
	})

	report, err := service.ImportMCRPlan(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Inserted)
	assert.Equal(t, 0, report.Failed)
	assert.NotEmpty(t, report.BatchID)

	require.Len(t, repo.mcrRows, 1)
	assert.Equal(t, "BM-1001", repo.mcrRows[0]["mcr_id"])
	assert.Equal(t, "Released", repo.mcrRows[0]["mcr_id_status"])
	assert.Equal(t, 120.5, repo.mcrRows[0]["planned_efforts"])
	assert.NotContains(t, repo.mcrRows[0], "Mystery Column")
}

func TestImportMCRPlan_ConvertsDateSerials(t *testing.T) {
	repo := &recordingPlanRepo{}
	service := NewImportService(repo)

	file := sheetFile(t, [][]any{
		{"MCR ID", "Record Date", "Planned Cost", "Planned Efforts"},
		{"BM-1001", 45292, 45292, 45292},
	})

	_, err := service.ImportMCRPlan(context.Background(), file)
	require.NoError(t, err)

	require.Len(t, repo.mcrRows, 1)
	assert.Equal(t, "2024-01-01", repo.mcrRows[0]["record_date"])
	// Cost and effort magnitudes are never reinterpreted as dates.
	assert.Equal(t, float64(45292), repo.mcrRows[0]["planned_cost"])
	assert.Equal(t, float64(45292), repo.mcrRows[0]["planned_efforts"])
}

func TestImportMCRPlan_EmptySheetRejected(t *testing.T) {
	repo := &recordingPlanRepo{}
	service := NewImportService(repo)

	file := sheetFile(t, [][]any{{"MCR ID", "Task ID"}})

	_, err := service.ImportMCRPlan(context.Background(), file)
	assert.ErrorIs(t, err, ErrEmptySheet)
	assert.Empty(t, repo.mcrRows)
}

func TestImportMCRPlan_CountsCoverEveryRow(t *testing.T) {
	repo := &recordingPlanRepo{failOn: "BM-BAD"}
	service := NewImportService(repo)

	file := sheetFile(t, [][]any{
		{"MCR ID"},
		{"BM-1"},
		{"BM-BAD"},
		{"BM-2"},
	})

	report, err := service.ImportMCRPlan(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Inserted)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 3, report.Inserted+report.Failed)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 3, report.Errors[0].Row)
}

func TestImportPlanisware_NoSerialConversion(t *testing.T) {
	repo := &recordingPlanRepo{}
	service := NewImportService(repo)

	file := sheetFile(t, [][]any{
		{"Project ID", "Resource Name", "Allocation", "Start Date"},
		{"P-77", "John Smith", 0.5, 45292},
	})

	report, err := service.ImportPlanisware(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Inserted)

	require.Len(t, repo.planiswareRows, 1)
	assert.Equal(t, 0.5, repo.planiswareRows[0]["allocation"])
	assert.Equal(t, float64(45292), repo.planiswareRows[0]["start_date"])
}
