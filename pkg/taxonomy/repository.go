package taxonomy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrGRMNotFound = errors.New("no GRM for department")

type Repository interface {
	Groups(ctx context.Context) ([]string, error)
	AllTeams(ctx context.Context) ([]string, error)
	TeamsByGroup(ctx context.Context, group string) ([]string, error)
	StoreGroupTeam(ctx context.Context, gt GroupTeam) (int, error)

	AllGRMs(ctx context.Context) ([]GRMInfo, error)
	StoreGRM(ctx context.Context, grm GRMInfo) (int, error)
	UpdateGRM(ctx context.Context, grm GRMInfo) (bool, error)
	DeleteGRM(ctx context.Context, grmID int) (bool, error)
	GRMByDept(ctx context.Context, dept string) (GRMInfo, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Groups(ctx context.Context) ([]string, error) {
	return r.queryStrings(ctx, "SELECT DISTINCT cgroup FROM groupandteam")
}

func (r *RepositoryImpl) AllTeams(ctx context.Context) ([]string, error) {
	return r.queryStrings(ctx, "SELECT DISTINCT cteam FROM groupandteam")
}

func (r *RepositoryImpl) TeamsByGroup(ctx context.Context, group string) ([]string, error) {
	return r.queryStrings(ctx, "SELECT cteam FROM groupandteam WHERE cgroup = ?", group)
}

func (r *RepositoryImpl) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query taxonomy: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			err := fmt.Errorf("could not scan taxonomy row: %w", err)
			log.Error(err)
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func (r *RepositoryImpl) StoreGroupTeam(ctx context.Context, gt GroupTeam) (int, error) {
	query := "INSERT INTO groupandteam (cteam, cgroup, grmname) VALUES (?, ?, ?)"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, gt.Team, gt.Group, gt.GRMName)
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

func (r *RepositoryImpl) AllGRMs(ctx context.Context) ([]GRMInfo, error) {
	query := "SELECT grmid, grmname, grmemail, grm_dept FROM grminfo"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query grminfo: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var grms []GRMInfo
	for rows.Next() {
		var grm GRMInfo
		var email, dept sql.NullString
		if err := rows.Scan(&grm.GRMID, &grm.Name, &email, &dept); err != nil {
			err := fmt.Errorf("could not scan grminfo: %w", err)
			log.Error(err)
			return nil, err
		}
		grm.Email = email.String
		grm.Dept = dept.String
		grms = append(grms, grm)
	}
	return grms, rows.Err()
}

func (r *RepositoryImpl) StoreGRM(ctx context.Context, grm GRMInfo) (int, error) {
	query := "INSERT INTO grminfo (grmname, grmemail, grm_dept) VALUES (?, ?, ?)"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, grm.Name, grm.Email, grm.Dept)
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

func (r *RepositoryImpl) UpdateGRM(ctx context.Context, grm GRMInfo) (bool, error) {
	query := "UPDATE grminfo SET grmname = ?, grmemail = ?, grm_dept = ? WHERE grmid = ?"
	result, err := r.db.ExecContext(ctx, query, grm.Name, grm.Email, grm.Dept, grm.GRMID)
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

func (r *RepositoryImpl) DeleteGRM(ctx context.Context, grmID int) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM grminfo WHERE grmid = ?", grmID)
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

func (r *RepositoryImpl) GRMByDept(ctx context.Context, dept string) (GRMInfo, error) {
	query := "SELECT grmid, grmname, grmemail, grm_dept FROM grminfo WHERE grm_dept = ?"
	row := r.db.QueryRowContext(ctx, query, dept)

	var grm GRMInfo
	var email, grmDept sql.NullString
	if err := row.Scan(&grm.GRMID, &grm.Name, &email, &grmDept); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GRMInfo{}, ErrGRMNotFound
		}
		err := fmt.Errorf("could not scan grminfo: %w", err)
		log.Error(err)
		return GRMInfo{}, err
	}
	grm.Email = email.String
	grm.Dept = grmDept.String
	return grm, nil
}
