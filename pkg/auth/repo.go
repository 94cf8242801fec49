package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repo interface {
	StoreAdmin(ctx context.Context, username string, passwordHash string) (int, error)
	FindAdminByUsername(ctx context.Context, username string) (Admin, error)
	StoreUser(ctx context.Context, user User) (int, error)
	FindUserByUsername(ctx context.Context, username string) (User, error)
	FindUserByID(ctx context.Context, id int) (User, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) StoreAdmin(ctx context.Context, username string, passwordHash string) (int, error) {
	query := "INSERT INTO adminlogin (username, password) VALUES (?, ?)"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, username, passwordHash)
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

func (r *RepoImpl) FindAdminByUsername(ctx context.Context, username string) (Admin, error) {
	query := "SELECT id, username, password FROM adminlogin WHERE username = ?"
	row := r.db.QueryRowContext(ctx, query, username)

	var admin Admin
	if err := row.Scan(&admin.ID, &admin.Username, &admin.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Admin{}, ErrUnknownUser
		}
		err := fmt.Errorf("could not scan admin: %w", err)
		log.Error(err)
		return Admin{}, err
	}
	return admin, nil
}

func (r *RepoImpl) StoreUser(ctx context.Context, user User) (int, error) {
	query := "INSERT INTO loginuser (username, pmodepartment, pmogroup) VALUES (?, ?, ?)"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, user.Username, user.Department, user.Group)
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

func (r *RepoImpl) FindUserByUsername(ctx context.Context, username string) (User, error) {
	query := "SELECT id, username, pmodepartment, pmogroup FROM loginuser WHERE username = ?"
	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *RepoImpl) FindUserByID(ctx context.Context, id int) (User, error) {
	query := "SELECT id, username, pmodepartment, pmogroup FROM loginuser WHERE id = ?"
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *RepoImpl) scanUser(row *sql.Row) (User, error) {
	var user User
	var department, group sql.NullString
	if err := row.Scan(&user.ID, &user.Username, &department, &group); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrUnknownUser
		}
		err := fmt.Errorf("could not scan user: %w", err)
		log.Error(err)
		return User{}, err
	}
	user.Department = department.String
	user.Group = group.String
	return user, nil
}
