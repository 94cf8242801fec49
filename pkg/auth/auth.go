package auth

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidCredentials = errors.New("wrong username/password combination")
	ErrUnknownUser        = errors.New("no user exists")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrMissingToken       = errors.New("no token provided or token is blacklisted")
	ErrNoIdentity         = errors.New("no authenticated identity in context")
)

// Admin is an administrator account stored in the adminlogin table.
type Admin struct {
	ID           int
	Username     string
	PasswordHash string
}

// User is a lightweight identity record created on first login, stored in loginuser.
type User struct {
	ID         int
	Username   string
	Department string
	Group      string
}

// Identity is the authenticated caller placed in the request context by the
// token middleware. Audit columns ("submitted by") are filled from it, never
// from the OS-level user.
type Identity struct {
	UserID   int
	Username string
}

type contextKey string

const identityKey contextKey = "identity"

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// CurrentIdentity retrieves the authenticated identity from the context.
func CurrentIdentity(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok {
		log.Trace("identity not found in context")
		return Identity{}, ErrNoIdentity
	}
	return id, nil
}

// SubmittedBy returns the username to record on audit columns, or an empty
// string when the request carried no identity.
func SubmittedBy(ctx context.Context) string {
	id, err := CurrentIdentity(ctx)
	if err != nil {
		return ""
	}
	return id.Username
}
