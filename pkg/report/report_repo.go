package report

import (
	"context"
	"database/sql"

	log "github.com/sirupsen/logrus"
)

type ReportRepo interface {
	Billed(ctx context.Context, filter Filter) ([]BilledRow, error)
	Unbilled(ctx context.Context, filter Filter) ([]UnbilledRow, error)
	UnderAllocated(ctx context.Context, month, group, team string) ([]AllocationRow, error)
	UnderAllocatedCounts(ctx context.Context, month, group, team string) ([]TeamCount, error)
}

type ReportRepoImpl struct {
	db *sql.DB
}

func NewReportRepo(db *sql.DB) *ReportRepoImpl {
	return &ReportRepoImpl{db}
}

func (r *ReportRepoImpl) Billed(ctx context.Context, filter Filter) ([]BilledRow, error) {
	q := compileBilled(filter)
	rows, err := r.db.QueryContext(ctx, q.sql, q.args...)
	if err != nil {
		log.WithError(err).Error("Error querying billed summary")
		return nil, err
	}
	defer rows.Close()

	var result []BilledRow
	for rows.Next() {
		var row BilledRow
		if err := rows.Scan(&row.EmployeeName, &row.EmployeeDept, &row.EmployeeTeam, &row.Hours, &row.Month, &row.BillingType); err != nil {
			log.WithError(err).Error("Error scanning billed summary row")
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *ReportRepoImpl) Unbilled(ctx context.Context, filter Filter) ([]UnbilledRow, error) {
	q := compileUnbilled(filter)
	rows, err := r.db.QueryContext(ctx, q.sql, q.args...)
	if err != nil {
		log.WithError(err).Error("Error querying unbilled set")
		return nil, err
	}
	defer rows.Close()

	var result []UnbilledRow
	for rows.Next() {
		var row UnbilledRow
		var hours sql.NullFloat64
		var month sql.NullString
		if err := rows.Scan(&row.EmployeeName, &row.EmployeeDept, &row.EmployeeTeam, &hours, &row.BillingType, &month); err != nil {
			log.WithError(err).Error("Error scanning unbilled row")
			return nil, err
		}
		if hours.Valid {
			row.Hours = &hours.Float64
		}
		if month.Valid {
			row.Month = &month.String
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// UnderAllocated lists roster entries without any non-MCR record for the
// month, together with non-MCR entries whose allocation ratio sits in
// [0, 1.0). An empty team widens the second leg to the whole group.
func (r *ReportRepoImpl) UnderAllocated(ctx context.Context, month, group, team string) ([]AllocationRow, error) {
	query := `
		SELECT a.employee_name, a.employee_team, m.pmo
		FROM associates a
		LEFT JOIN nonmcrbilling m ON a.employee_id = m.empno AND m.pmo_month = ?
		WHERE m.empno IS NULL
		UNION
		SELECT employeename, cteam, pmo
		FROM nonmcrbilling
		WHERE pmo >= 0 AND pmo < 1.0 AND cgroup = ?`
	args := []any{month, group}
	if team != "" {
		query += " AND cteam = ?"
		args = append(args, team)
	}
	query += " AND pmo_month = ?"
	args = append(args, month)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.WithError(err).Error("Error querying under-allocated associates")
		return nil, err
	}
	defer rows.Close()

	var result []AllocationRow
	for rows.Next() {
		var row AllocationRow
		var pmo sql.NullFloat64
		if err := rows.Scan(&row.EmployeeName, &row.EmployeeTeam, &pmo); err != nil {
			log.WithError(err).Error("Error scanning under-allocated row")
			return nil, err
		}
		if pmo.Valid {
			row.PMO = &pmo.Float64
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *ReportRepoImpl) UnderAllocatedCounts(ctx context.Context, month, group, team string) ([]TeamCount, error) {
	query := `
		SELECT employee_team, SUM(Count) AS Count
		FROM (
			SELECT a.employee_team, COUNT(*) AS Count
			FROM associates a
			LEFT JOIN nonmcrbilling m ON a.employee_id = m.empno AND m.pmo_month = ?
			WHERE m.empno IS NULL
			GROUP BY a.employee_team
			UNION ALL
			SELECT cteam AS employee_team, COUNT(*) AS Count
			FROM nonmcrbilling
			WHERE pmo >= 0 AND pmo < 1.0 AND cgroup = ?`
	args := []any{month, group}
	if team != "" {
		query += " AND cteam = ?"
		args = append(args, team)
	}
	query += ` AND pmo_month = ?
			GROUP BY cteam
		) combined
		GROUP BY employee_team`
	args = append(args, month)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.WithError(err).Error("Error querying under-allocation counts")
		return nil, err
	}
	defer rows.Close()

	var result []TeamCount
	for rows.Next() {
		var row TeamCount
		if err := rows.Scan(&row.EmployeeTeam, &row.Count); err != nil {
			log.WithError(err).Error("Error scanning under-allocation count row")
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
