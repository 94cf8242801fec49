package billing

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type MCRRepo interface {
	Store(ctx context.Context, record MCRBilling) (int, error)
	GetByTeam(ctx context.Context, team string) ([]MCRBilling, error)
	Update(ctx context.Context, record MCRBilling) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	// SumHours totals all billed hours for one associate and month.
	// No rows means zero hours, not an error.
	SumHours(ctx context.Context, empNo int, month string) (float64, error)
	AggregateHours(ctx context.Context) ([]AggregateRow, error)
}

type MCRRepoImpl struct {
	db *sql.DB
}

func NewMCRRepo(db *sql.DB) *MCRRepoImpl {
	return &MCRRepoImpl{db: db}
}

func (r *MCRRepoImpl) Store(ctx context.Context, record MCRBilling) (int, error) {
	query := `INSERT INTO mcrbilling (pmo_month, bmnumber, taskid, rgid, rgd, wstatus, pd, pbu, company,
					associatename, empno, hours, pmo, pif, billingstatus, remarks, username, cteam)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		record.Month,
		record.BMNumber,
		record.TaskID,
		record.RGID,
		record.RGD,
		record.WStatus,
		record.PD,
		record.PBU,
		record.Company,
		record.AssociateName,
		record.EmpNo,
		record.Hours,
		record.PMO,
		record.PIF,
		record.BillingStatus,
		record.Remarks,
		record.Username,
		record.Team,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return 0, err
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		err := fmt.Errorf("could not retrieve last insert id: %w", err)
		log.Error(err)
		return 0, err
	}
	return int(lastInsertID), nil
}

func (r *MCRRepoImpl) GetByTeam(ctx context.Context, team string) ([]MCRBilling, error) {
	query := `SELECT id, pmo_month, bmnumber, taskid, rgid, rgd, wstatus, pd, pbu, company,
					associatename, empno, hours, pmo, pif, billingstatus, remarks, username, cteam
				FROM mcrbilling WHERE cteam = ?`
	rows, err := r.db.QueryContext(ctx, query, team)
	if err != nil {
		err := fmt.Errorf("could not query mcrbilling: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var records []MCRBilling
	for rows.Next() {
		record, err := scanMCR(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return records, nil
}

func scanMCR(rows *sql.Rows) (MCRBilling, error) {
	var record MCRBilling
	var bmnumber, taskid, rgid, rgd, wstatus, pd, pbu, company, name, pif, status, remarks, username, team sql.NullString
	var empNo sql.NullInt64
	var pmo sql.NullFloat64
	if err := rows.Scan(
		&record.ID,
		&record.Month,
		&bmnumber,
		&taskid,
		&rgid,
		&rgd,
		&wstatus,
		&pd,
		&pbu,
		&company,
		&name,
		&empNo,
		&record.Hours,
		&pmo,
		&pif,
		&status,
		&remarks,
		&username,
		&team,
	); err != nil {
		err := fmt.Errorf("could not scan mcrbilling: %w", err)
		log.Error(err)
		return MCRBilling{}, err
	}
	record.BMNumber = bmnumber.String
	record.TaskID = taskid.String
	record.RGID = rgid.String
	record.RGD = rgd.String
	record.WStatus = wstatus.String
	record.PD = pd.String
	record.PBU = pbu.String
	record.Company = company.String
	record.AssociateName = name.String
	record.EmpNo = int(empNo.Int64)
	record.PMO = pmo.Float64
	record.PIF = pif.String
	record.BillingStatus = status.String
	record.Remarks = remarks.String
	record.Username = username.String
	record.Team = team.String
	return record, nil
}

func (r *MCRRepoImpl) Update(ctx context.Context, record MCRBilling) (bool, error) {
	query := `UPDATE mcrbilling SET pmo_month = ?, bmnumber = ?, wstatus = ?, company = ?, pd = ?, pbu = ?,
					taskid = ?, rgd = ?, rgid = ?, associatename = ?, empno = ?, hours = ?, pmo = ?, pif = ?,
					billingstatus = ?, remarks = ?
				WHERE id = ?`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		record.Month,
		record.BMNumber,
		record.WStatus,
		record.Company,
		record.PD,
		record.PBU,
		record.TaskID,
		record.RGD,
		record.RGID,
		record.AssociateName,
		record.EmpNo,
		record.Hours,
		record.PMO,
		record.PIF,
		record.BillingStatus,
		record.Remarks,
		record.ID,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func (r *MCRRepoImpl) Delete(ctx context.Context, id int) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM mcrbilling WHERE id = ?", id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func (r *MCRRepoImpl) SumHours(ctx context.Context, empNo int, month string) (float64, error) {
	query := "SELECT SUM(hours) FROM mcrbilling WHERE empno = ? AND pmo_month = ?"
	row := r.db.QueryRowContext(ctx, query, empNo, month)

	var total sql.NullFloat64
	if err := row.Scan(&total); err != nil {
		err := fmt.Errorf("could not sum billed hours: %w", err)
		log.Error(err)
		return 0, err
	}
	return total.Float64, nil
}

func (r *MCRRepoImpl) AggregateHours(ctx context.Context) ([]AggregateRow, error) {
	query := `SELECT associatename, SUM(hours) AS hours, pmo_month
				FROM mcrbilling GROUP BY associatename, pmo_month`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query aggregate hours: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var aggregates []AggregateRow
	for rows.Next() {
		var row AggregateRow
		if err := rows.Scan(&row.AssociateName, &row.Hours, &row.Month); err != nil {
			err := fmt.Errorf("could not scan aggregate row: %w", err)
			log.Error(err)
			return nil, err
		}
		aggregates = append(aggregates, row)
	}
	return aggregates, rows.Err()
}
