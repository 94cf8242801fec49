package session

import (
	"context"
	"database/sql"
	"errors"

	log "github.com/sirupsen/logrus"
)

type SessionRepo interface {
	Store(ctx context.Context, session Session) error
	GetByToken(ctx context.Context, token string) (Session, error)
	DeleteByToken(ctx context.Context, token string) error
}

type SessionRepoImpl struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepoImpl {
	return &SessionRepoImpl{db}
}

func (r *SessionRepoImpl) Store(ctx context.Context, session Session) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO user_sessions (user_id, user_data, department, cgroup, token) VALUES (?, ?, ?, ?, ?)",
		session.UserID, string(session.UserData), session.Department, session.Group, session.Token,
	)
	if err != nil {
		log.WithError(err).Error("Error storing session")
	}
	return err
}

func (r *SessionRepoImpl) GetByToken(ctx context.Context, token string) (Session, error) {
	var session Session
	var userData string
	err := r.db.QueryRowContext(ctx,
		"SELECT user_data, department, cgroup FROM user_sessions WHERE token = ?",
		token,
	).Scan(&userData, &session.Department, &session.Group)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.WithError(err).Error("Error fetching session")
		return Session{}, err
	}
	session.UserData = []byte(userData)
	session.Token = token
	return session, nil
}

func (r *SessionRepoImpl) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM user_sessions WHERE token = ?", token)
	if err != nil {
		log.WithError(err).Error("Error deleting session")
	}
	return err
}
