package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, refreshTTL time.Duration) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:", refreshTTL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func registerUser(t *testing.T, st *sqlite.Store, email, password string) domain.User {
	t.Helper()

	first := "David"
	last := "Bowie"
	u, err := st.Credentials().RegisterUser(context.Background(), domain.Registration{
		FirstName: &first,
		LastName:  &last,
		Email:     email,
		Password:  password,
	})
	require.NoError(t, err)
	return u
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, time.Hour)
	u := registerUser(t, st, "david.bowie@gmail.com", "Z1gGy.Pl4y3d!GuI74R")

	t.Run("valid credentials mint a grant", func(t *testing.T) {
		grant, err := st.Credentials().Authenticate(ctx, "david.bowie@gmail.com", "Z1gGy.Pl4y3d!GuI74R")
		require.NoError(t, err)
		require.Equal(t, u.ID, grant.UserID)
		require.Equal(t, "anonymous", grant.Role)
		require.NotEqual(t, uuid.Nil, grant.RefreshToken)
		require.True(t, grant.RefreshTokenExpires.After(time.Now()))
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := st.Credentials().Authenticate(ctx, "david.bowie@gmail.com", "wrong")
		require.ErrorIs(t, err, store.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := st.Credentials().Authenticate(ctx, "unknown@x.com", "Z1gGy.Pl4y3d!GuI74R")
		require.ErrorIs(t, err, store.ErrInvalidCredentials)
	})
}

func TestValidateRefreshTokenRotates(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, time.Hour)
	u := registerUser(t, st, "david.bowie@gmail.com", "Z1gGy.Pl4y3d!GuI74R")

	grant, err := st.Credentials().Authenticate(ctx, "david.bowie@gmail.com", "Z1gGy.Pl4y3d!GuI74R")
	require.NoError(t, err)

	rotated, err := st.Credentials().ValidateRefreshToken(ctx, grant.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, u.ID, rotated.UserID)
	require.NotEqual(t, grant.RefreshToken, rotated.RefreshToken)

	// The presented token is single-use.
	_, err = st.Credentials().ValidateRefreshToken(ctx, grant.RefreshToken)
	require.ErrorIs(t, err, store.ErrInvalidCredentials)

	// The replacement still works.
	_, err = st.Credentials().ValidateRefreshToken(ctx, rotated.RefreshToken)
	require.NoError(t, err)
}

func TestValidateRefreshTokenFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown token", func(t *testing.T) {
		st := newTestStore(t, time.Hour)
		_, err := st.Credentials().ValidateRefreshToken(ctx, uuid.New())
		require.ErrorIs(t, err, store.ErrInvalidCredentials)
	})

	t.Run("expired token", func(t *testing.T) {
		st := newTestStore(t, -time.Minute) // mint already-expired tokens
		registerUser(t, st, "david.bowie@gmail.com", "Z1gGy.Pl4y3d!GuI74R")

		grant, err := st.Credentials().Authenticate(ctx, "david.bowie@gmail.com", "Z1gGy.Pl4y3d!GuI74R")
		require.NoError(t, err)

		_, err = st.Credentials().ValidateRefreshToken(ctx, grant.RefreshToken)
		require.ErrorIs(t, err, store.ErrInvalidCredentials)
	})
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, time.Hour)

	u := registerUser(t, st, "bark.ruffalo@gmail.com", "Sm4rT.HuLk")
	require.NotEqual(t, uuid.Nil, u.ID)
	require.Equal(t, "bark.ruffalo@gmail.com", u.Email)
	require.Equal(t, "David", *u.FirstName)
	require.False(t, u.CreatedAt.IsZero())

	t.Run("duplicate email", func(t *testing.T) {
		_, err := st.Credentials().RegisterUser(ctx, domain.Registration{
			Email:    "bark.ruffalo@gmail.com",
			Password: "Sm4rT.HuLk",
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestDeleteExpiredRefreshTokens(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, -time.Minute)
	registerUser(t, st, "david.bowie@gmail.com", "Z1gGy.Pl4y3d!GuI74R")

	_, err := st.Credentials().Authenticate(ctx, "david.bowie@gmail.com", "Z1gGy.Pl4y3d!GuI74R")
	require.NoError(t, err)

	deleted, err := st.Credentials().DeleteExpiredRefreshTokens(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, deleted)
}

func TestUsersRepo(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, time.Hour)

	first := registerUser(t, st, "david.bowie@gmail.com", "Z1gGy.Pl4y3d!GuI74R")
	registerUser(t, st, "major.tom@gmail.com", "Gr0und.C0ntr0l")

	users, err := st.Users().ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	got, err := st.Users().GetUserByID(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, first.Email, got.Email)

	_, err = st.Users().GetUserByID(ctx, uuid.New())
	require.ErrorIs(t, err, store.ErrNotFound)
}
