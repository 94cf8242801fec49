package session

import (
	"encoding/json"
	"errors"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is an opaque client-state blob cached against a token.
type Session struct {
	UserID     int
	UserData   json.RawMessage
	Department string
	Group      string
	Token      string
}
