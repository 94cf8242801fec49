package importer

import (
	"context"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/pmodesk/pmodesk/pkg/plan"
)

var ErrEmptySheet = errors.New("spreadsheet has no data rows")

// dateSerialThreshold is the spreadsheet serial for 1970-01-01. Numeric
// values above it on date-bearing columns are serials, not magnitudes.
const dateSerialThreshold = 25569

// serialEpoch is day zero of the spreadsheet date system.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// Report summarizes one upload. Inserted and Failed always sum to the number
// of data rows in the sheet.
type Report struct {
	BatchID  string     `json:"batchId"`
	Sheet    string     `json:"sheet"`
	Inserted int        `json:"inserted"`
	Failed   int        `json:"failed"`
	Errors   []RowError `json:"errors"`
}

type ImportService interface {
	ImportMCRPlan(ctx context.Context, file io.Reader) (Report, error)
	ImportPlanisware(ctx context.Context, file io.Reader) (Report, error)
}

type ImportServiceImpl struct {
	repo plan.PlanRepo
}

func NewImportService(repo plan.PlanRepo) *ImportServiceImpl {
	return &ImportServiceImpl{repo}
}

func (s *ImportServiceImpl) ImportMCRPlan(ctx context.Context, file io.Reader) (Report, error) {
	return s.importSheet(ctx, file, mcrPlanMapping, true, s.repo.InsertMCRPlanRow)
}

func (s *ImportServiceImpl) ImportPlanisware(ctx context.Context, file io.Reader) (Report, error) {
	return s.importSheet(ctx, file, planiswareMapping, false, s.repo.InsertPlaniswareRow)
}

func (s *ImportServiceImpl) importSheet(
	ctx context.Context,
	file io.Reader,
	mapping map[string]string,
	convertSerials bool,
	insert func(ctx context.Context, row map[string]any) error,
) (Report, error) {
	workbook, err := excelize.OpenReader(file)
	if err != nil {
		log.WithError(err).Error("Error opening uploaded spreadsheet")
		return Report{}, err
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return Report{}, ErrEmptySheet
	}
	sheet := sheets[0]
	rows, err := workbook.GetRows(sheet)
	if err != nil {
		log.WithError(err).Error("Error reading sheet rows")
		return Report{}, err
	}
	if len(rows) < 2 {
		return Report{}, ErrEmptySheet
	}

	columns := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		columns[i] = mapping[header]
	}

	report := Report{BatchID: uuid.NewString(), Sheet: sheet}
	for i, cells := range rows[1:] {
		record := decodeRow(columns, cells, convertSerials)
		rowNumber := i + 2
		if len(record) == 0 {
			report.Failed++
			report.Errors = append(report.Errors, RowError{Row: rowNumber, Error: "no recognized fields"})
			continue
		}
		if err := insert(ctx, record); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, RowError{Row: rowNumber, Error: err.Error()})
			continue
		}
		report.Inserted++
	}
	log.WithFields(log.Fields{
		"batchId":  report.BatchID,
		"sheet":    report.Sheet,
		"inserted": report.Inserted,
		"failed":   report.Failed,
	}).Info("Spreadsheet import finished")
	return report, nil
}

func decodeRow(columns []string, cells []string, convertSerials bool) map[string]any {
	record := make(map[string]any)
	for i, cell := range cells {
		if i >= len(columns) || columns[i] == "" || cell == "" {
			continue
		}
		record[columns[i]] = decodeCell(columns[i], cell, convertSerials)
	}
	return record
}

// decodeCell keeps text as-is and parses numbers; numeric values above the
// serial threshold become calendar dates unless the column is exempt.
func decodeCell(column, cell string, convertSerials bool) any {
	value, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return cell
	}
	if convertSerials && value > dateSerialThreshold && !serialExemptColumns[column] {
		return serialToDate(value)
	}
	return value
}

func serialToDate(serial float64) string {
	return serialEpoch.AddDate(0, 0, int(serial)).Format("2006-01-02")
}
