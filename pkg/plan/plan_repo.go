package plan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// mcrPlanColumns is the set of columns a spreadsheet import may populate.
var mcrPlanColumns = map[string]bool{
	"mcr_id": true, "task_id": true, "resource_group_id": true,
	"mcr_id_description": true, "mcr_id_status": true, "project_division": true,
	"project_business_unit": true, "time_record_on_task": true,
	"classification_time_record": true, "task_description": true,
	"resource_group_description": true, "cost_center": true, "activity_type": true,
	"planned_efforts": true, "unit_of_measure": true, "planned_cost": true,
	"currency": true, "record_date": true, "cost_element": true,
	"cost_element_description": true, "plan_id": true, "plan_id_description": true,
	"ignore_all_flag": true, "multi_usage_flag": true, "resource_type": true,
	"time_record_on_rqms_no": true, "task_start_date": true, "task_end_date": true,
	"legal_owners_company_code": true, "mcr_start_date": true, "mcr_end_date": true,
	"prime_start_date": true, "prime_end_date": true, "resource_group_company_code": true,
}

var planiswareColumns = map[string]bool{
	"project_id": true, "project_name": true, "task_id": true, "task_name": true,
	"resource_id": true, "resource_name": true, "allocation": true,
	"planned_effort": true, "actual_effort": true, "start_date": true,
	"end_date": true, "task_status": true, "business_unit": true, "division": true,
}

type PlanRepo interface {
	InsertMCRPlanRow(ctx context.Context, row map[string]any) error
	InsertPlaniswareRow(ctx context.Context, row map[string]any) error
	DetailsByBMNumber(ctx context.Context, bmNumber string) (Details, error)
	RGDOptions(ctx context.Context, bmNumber string) ([]RGDOption, error)
	RGIDByRGD(ctx context.Context, rgd string) (string, error)
}

type PlanRepoImpl struct {
	db *sql.DB
}

func NewPlanRepo(db *sql.DB) *PlanRepoImpl {
	return &PlanRepoImpl{db}
}

func (r *PlanRepoImpl) InsertMCRPlanRow(ctx context.Context, row map[string]any) error {
	return r.insertRow(ctx, "mcrplan", mcrPlanColumns, row)
}

func (r *PlanRepoImpl) InsertPlaniswareRow(ctx context.Context, row map[string]any) error {
	return r.insertRow(ctx, "planisware", planiswareColumns, row)
}

// insertRow builds an INSERT over exactly the populated columns. Column names
// not in the table's allowed set are rejected rather than interpolated.
func (r *PlanRepoImpl) insertRow(ctx context.Context, table string, allowed map[string]bool, row map[string]any) error {
	if len(row) == 0 {
		return errors.New("empty row")
	}
	columns := make([]string, 0, len(row))
	for column := range row {
		if !allowed[column] {
			return fmt.Errorf("unknown column %q for table %s", column, table)
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	args := make([]any, 0, len(columns))
	for _, column := range columns {
		args = append(args, row[column])
	}

	query := "INSERT INTO " + table + " (" + strings.Join(columns, ", ") + ") VALUES (?" + strings.Repeat(", ?", len(columns)-1) + ")"
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.WithError(err).WithField("table", table).Error("Error inserting plan row")
		return err
	}
	return nil
}

func (r *PlanRepoImpl) DetailsByBMNumber(ctx context.Context, bmNumber string) (Details, error) {
	var details Details
	row := r.db.QueryRowContext(ctx,
		"SELECT mcr_id_status, project_division, project_business_unit FROM mcrplan WHERE mcr_id = ?",
		bmNumber,
	)
	err := row.Scan(&details.MCRIDStatus, &details.ProjectDivision, &details.ProjectBusinessUnit)
	if errors.Is(err, sql.ErrNoRows) {
		return Details{}, ErrPlanNotFound
	}
	if err != nil {
		log.WithError(err).Error("Error fetching plan details")
		return Details{}, err
	}
	return details, nil
}

func (r *PlanRepoImpl) RGDOptions(ctx context.Context, bmNumber string) ([]RGDOption, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT resource_group_description, resource_group_id FROM mcrplan WHERE mcr_id = ?",
		bmNumber,
	)
	if err != nil {
		log.WithError(err).Error("Error fetching resource group options")
		return nil, err
	}
	defer rows.Close()

	var options []RGDOption
	for rows.Next() {
		var option RGDOption
		var description, id sql.NullString
		if err := rows.Scan(&description, &id); err != nil {
			log.WithError(err).Error("Error scanning resource group option")
			return nil, err
		}
		option.ResourceGroupDescription = description.String
		option.ResourceGroupID = id.String
		options = append(options, option)
	}
	return options, rows.Err()
}

func (r *PlanRepoImpl) RGIDByRGD(ctx context.Context, rgd string) (string, error) {
	var rgid string
	err := r.db.QueryRowContext(ctx,
		"SELECT resource_group_id FROM mcrplan WHERE resource_group_description = ?",
		rgd,
	).Scan(&rgid)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrRGIDNotFound
	}
	if err != nil {
		log.WithError(err).Error("Error fetching resource group id")
		return "", err
	}
	return rgid, nil
}
