package auth

import (
	"context"
	"testing"
	"time"

	"github.com/pmodesk/pmodesk/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (*ServiceImpl, *StubRepo) {
	t.Helper()
	repo := NewStubRepo()
	tokens := NewTokenManager("test-secret", time.Hour)
	return NewService(repo, tokens, NewMemoryRevocationStore(), 4), repo
}

func TestAdminLogin(t *testing.T) {
	ctx := context.Background()
	service, _ := setupService(t)
	require.NoError(t, service.RegisterAdmin(ctx, "admin", "s3cret-pass"))

	t.Run("valid credentials issue a token", func(t *testing.T) {
		token, admin, err := service.AdminLogin(ctx, "admin", "s3cret-pass")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "admin", admin.Username)

		identity, err := service.Authenticate(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", identity.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := service.AdminLogin(ctx, "admin", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, _, err := service.AdminLogin(ctx, "nobody", "s3cret-pass")
		assert.ErrorIs(t, err, ErrUnknownUser)
	})
}

func TestUserLogin_FindsOrCreates(t *testing.T) {
	ctx := context.Background()
	service, repo := setupService(t)

	token, user, err := service.UserLogin(ctx, "jdoe", "D1", "G1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "D1", user.Department)

	// second login reuses the stored record
	_, again, err := service.UserLogin(ctx, "jdoe", "ignored", "ignored")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
	assert.Equal(t, "D1", again.Department)

	stored, err := repo.FindUserByUsername(ctx, "jdoe")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

func TestAuthenticate_RevokedTokenRejected(t *testing.T) {
	ctx := context.Background()
	service, _ := setupService(t)
	require.NoError(t, service.RegisterAdmin(ctx, "admin", "s3cret-pass"))
	token, _, err := service.AdminLogin(ctx, "admin", "s3cret-pass")
	require.NoError(t, err)

	require.NoError(t, service.Logout(token))

	// still unexpired and correctly signed, but revoked
	_, err = service.Authenticate(token)
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestAuthenticate_UniformFailures(t *testing.T) {
	service, _ := setupService(t)

	_, err := service.Authenticate("")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = service.Authenticate("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	otherSigner := NewTokenManager("other-secret", time.Hour)
	forged, err := otherSigner.Generate(1, "admin")
	require.NoError(t, err)
	_, err = service.Authenticate(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMemoryRevocationStore_Eviction(t *testing.T) {
	store := NewMemoryRevocationStore()
	clock := &utils.MockClock{FixedNow: time.Now()}
	store.clock = clock

	store.Revoke("tok", clock.Now().Add(time.Minute))
	assert.True(t, store.IsRevoked("tok"))

	clock.SetNow(clock.Now().Add(2 * time.Minute))
	assert.False(t, store.IsRevoked("tok"))
	assert.Empty(t, store.tokens)
}
