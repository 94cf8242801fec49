package session

import (
	"context"
	"testing"

	"github.com/pmodesk/pmodesk/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepo_RoundTrip(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewSessionRepo(db)
	ctx := context.Background()

	stored := Session{
		UserID:     7,
		UserData:   []byte(`{"theme":"dark","views":["billing"]}`),
		Department: "D1",
		Group:      "Engineering",
		Token:      "tok-123",
	}
	require.NoError(t, repo.Store(ctx, stored))

	fetched, err := repo.GetByToken(ctx, "tok-123")
	require.NoError(t, err)
	assert.JSONEq(t, string(stored.UserData), string(fetched.UserData))
	assert.Equal(t, "D1", fetched.Department)
	assert.Equal(t, "Engineering", fetched.Group)

	_, err = repo.GetByToken(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, repo.DeleteByToken(ctx, "tok-123"))
	_, err = repo.GetByToken(ctx, "tok-123")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepo_TokenIsUnique(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewSessionRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, Session{UserID: 1, UserData: []byte(`{}`), Token: "tok-1"}))
	err := repo.Store(ctx, Session{UserID: 2, UserData: []byte(`{}`), Token: "tok-1"})
	assert.Error(t, err)
}
