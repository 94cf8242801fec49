package billing

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type NonMCRRepo interface {
	Store(ctx context.Context, record NonMCRBilling) (int, error)
	GetByTeam(ctx context.Context, team string) ([]NonMCRBilling, error)
	Update(ctx context.Context, record NonMCRBilling) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	SumHours(ctx context.Context, empNo int, month string) (float64, error)
}

type NonMCRRepoImpl struct {
	db *sql.DB
}

func NewNonMCRRepo(db *sql.DB) *NonMCRRepoImpl {
	return &NonMCRRepoImpl{db: db}
}

func (r *NonMCRRepoImpl) Store(ctx context.Context, record NonMCRBilling) (int, error) {
	query := `INSERT INTO nonmcrbilling (pmo_month, pif, ponumber, contractno, legalcompany, custcoorddetails,
					employeename, empno, onsite, hours, pmo, sonumber, sdcstatus, sostatus, sotext, remarks,
					username, cteam, cgroup)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		record.Month,
		record.PIF,
		record.PONumber,
		record.ContractNo,
		record.LegalCompany,
		record.CustCoordDetails,
		record.EmployeeName,
		record.EmpNo,
		record.Onsite,
		record.Hours,
		record.PMO,
		record.SONumber,
		record.SDCStatus,
		record.SOStatus,
		record.SOText,
		record.Remarks,
		record.Username,
		record.Team,
		record.Group,
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

func (r *NonMCRRepoImpl) GetByTeam(ctx context.Context, team string) ([]NonMCRBilling, error) {
	query := `SELECT id, pmo_month, pif, ponumber, contractno, legalcompany, custcoorddetails, employeename,
					empno, onsite, hours, pmo, sonumber, sdcstatus, sostatus, sotext, remarks, username, cteam, cgroup
				FROM nonmcrbilling WHERE cteam = ?`
	rows, err := r.db.QueryContext(ctx, query, team)
	if err != nil {
		err := fmt.Errorf("could not query nonmcrbilling: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var records []NonMCRBilling
	for rows.Next() {
		record, err := scanNonMCR(rows)
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

func scanNonMCR(rows *sql.Rows) (NonMCRBilling, error) {
	var record NonMCRBilling
	var pif, po, contract, company, cust, name, onsite, so, sdc, sostatus, sotext, remarks, username, team, group sql.NullString
	var empNo sql.NullInt64
	var pmo sql.NullFloat64
	if err := rows.Scan(
		&record.ID,
		&record.Month,
		&pif,
		&po,
		&contract,
		&company,
		&cust,
		&name,
		&empNo,
		&onsite,
		&record.Hours,
		&pmo,
		&so,
		&sdc,
		&sostatus,
		&sotext,
		&remarks,
		&username,
		&team,
		&group,
	); err != nil {
		err := fmt.Errorf("could not scan nonmcrbilling: %w", err)
		log.Error(err)
		return NonMCRBilling{}, err
	}
	record.PIF = pif.String
	record.PONumber = po.String
	record.ContractNo = contract.String
	record.LegalCompany = company.String
	record.CustCoordDetails = cust.String
	record.EmployeeName = name.String
	record.EmpNo = int(empNo.Int64)
	record.Onsite = onsite.String
	record.PMO = pmo.Float64
	record.SONumber = so.String
	record.SDCStatus = sdc.String
	record.SOStatus = sostatus.String
	record.SOText = sotext.String
	record.Remarks = remarks.String
	record.Username = username.String
	record.Team = team.String
	record.Group = group.String
	return record, nil
}

func (r *NonMCRRepoImpl) Update(ctx context.Context, record NonMCRBilling) (bool, error) {
	query := `UPDATE nonmcrbilling SET pmo_month = ?, pif = ?, ponumber = ?, contractno = ?, legalcompany = ?,
					custcoorddetails = ?, employeename = ?, empno = ?, onsite = ?, hours = ?, pmo = ?, sonumber = ?,
					sdcstatus = ?, sostatus = ?, sotext = ?, remarks = ?
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
		record.PIF,
		record.PONumber,
		record.ContractNo,
		record.LegalCompany,
		record.CustCoordDetails,
		record.EmployeeName,
		record.EmpNo,
		record.Onsite,
		record.Hours,
		record.PMO,
		record.SONumber,
		record.SDCStatus,
		record.SOStatus,
		record.SOText,
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

func (r *NonMCRRepoImpl) Delete(ctx context.Context, id int) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM nonmcrbilling WHERE id = ?", id)
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

func (r *NonMCRRepoImpl) SumHours(ctx context.Context, empNo int, month string) (float64, error) {
	query := "SELECT SUM(hours) FROM nonmcrbilling WHERE empno = ? AND pmo_month = ?"
	row := r.db.QueryRowContext(ctx, query, empNo, month)

	var total sql.NullFloat64
	if err := row.Scan(&total); err != nil {
		err := fmt.Errorf("could not sum billed hours: %w", err)
		log.Error(err)
		return 0, err
	}
	return total.Float64, nil
}
