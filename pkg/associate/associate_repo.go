package associate

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type AssociateRepo interface {
	StoreAll(ctx context.Context, associates []Associate) (int, error)
	GetByTeam(ctx context.Context, team string) ([]Associate, error)
	OptionsByTeam(ctx context.Context, team string) ([]Option, error)
	Update(ctx context.Context, associate Associate) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type AssociateRepoImpl struct {
	db *sql.DB
}

func NewAssociateRepo(db *sql.DB) *AssociateRepoImpl {
	return &AssociateRepoImpl{db: db}
}

// StoreAll inserts all rows in one transaction, so a bulk roster add is
// all-or-nothing.
func (r *AssociateRepoImpl) StoreAll(ctx context.Context, associates []Associate) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		err := fmt.Errorf("could not begin transaction: %w", err)
		log.Error(err)
		return 0, err
	}
	defer tx.Rollback()

	query := `INSERT INTO associates (employee_name, employee_id, employee_status, employee_dept, employee_team)
				VALUES (?, ?, ?, ?, ?)`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	for _, a := range associates {
		if _, err := stmt.ExecContext(ctx, a.EmployeeName, a.EmployeeID, a.EmployeeStatus, a.EmployeeDept, a.EmployeeTeam); err != nil {
			err := fmt.Errorf("could not execute query: %v", err)
			log.Error(err)
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		err := fmt.Errorf("could not commit transaction: %w", err)
		log.Error(err)
		return 0, err
	}
	return len(associates), nil
}

func (r *AssociateRepoImpl) GetByTeam(ctx context.Context, team string) ([]Associate, error) {
	query := `SELECT id, employee_name, employee_id, employee_status, employee_dept, employee_team
				FROM associates WHERE employee_team = ?`
	rows, err := r.db.QueryContext(ctx, query, team)
	if err != nil {
		err := fmt.Errorf("could not query associates: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var associates []Associate
	for rows.Next() {
		var a Associate
		var status, dept, cteam sql.NullString
		if err := rows.Scan(&a.ID, &a.EmployeeName, &a.EmployeeID, &status, &dept, &cteam); err != nil {
			err := fmt.Errorf("could not scan associate: %w", err)
			log.Error(err)
			return nil, err
		}
		a.EmployeeStatus = status.String
		a.EmployeeDept = dept.String
		a.EmployeeTeam = cteam.String
		associates = append(associates, a)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return associates, nil
}

func (r *AssociateRepoImpl) OptionsByTeam(ctx context.Context, team string) ([]Option, error) {
	query := "SELECT employee_name, employee_id FROM associates WHERE employee_team = ?"
	rows, err := r.db.QueryContext(ctx, query, team)
	if err != nil {
		err := fmt.Errorf("could not query associate options: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var options []Option
	for rows.Next() {
		var o Option
		if err := rows.Scan(&o.Label, &o.Value); err != nil {
			err := fmt.Errorf("could not scan associate option: %w", err)
			log.Error(err)
			return nil, err
		}
		options = append(options, o)
	}
	return options, rows.Err()
}

func (r *AssociateRepoImpl) Update(ctx context.Context, associate Associate) (bool, error) {
	query := "UPDATE associates SET employee_name = ?, employee_id = ?, employee_status = ? WHERE id = ?"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, associate.EmployeeName, associate.EmployeeID, associate.EmployeeStatus, associate.ID)
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

func (r *AssociateRepoImpl) Delete(ctx context.Context, id int) (bool, error) {
	query := "DELETE FROM associates WHERE id = ?"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, id)
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
