package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
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

func newTokenService(t *testing.T) *service.TokenService {
	t.Helper()

	signer, err := jwtx.NewHS512([]byte("test-secret-which-is-plenty-long"))
	require.NoError(t, err)
	return service.NewTokenService(signer, 15*time.Minute)
}

func register(t *testing.T, st store.Store, email, password string) domain.User {
	t.Helper()

	u, err := st.Credentials().RegisterUser(context.Background(), domain.Registration{
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return u
}

func TestAuthorize(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, time.Hour)
	auth := service.NewAuthService(st, newTokenService(t))

	u := register(t, st, "freddie.mercury@gmail.com", "Sc4raM0uch3!Fand4ng0")

	t.Run("valid credentials produce a bearer session", func(t *testing.T) {
		sess, err := auth.Authorize(ctx, "freddie.mercury@gmail.com", "Sc4raM0uch3!Fand4ng0")
		require.NoError(t, err)
		require.Equal(t, "Bearer", sess.TokenType)
		require.NotEmpty(t, sess.AccessToken)
		require.NotEqual(t, uuid.Nil, sess.RefreshToken)
		require.Greater(t, sess.ExpiresIn, time.Now().UnixMilli())
		require.Greater(t, sess.RefreshTokenExpires, sess.ExpiresIn)

		// The access token carries the user id and role as claims.
		verifier, err := jwtx.NewHS512([]byte("test-secret-which-is-plenty-long"))
		require.NoError(t, err)
		claims, err := verifier.Verify(sess.AccessToken)
		require.NoError(t, err)
		require.Equal(t, u.ID, claims.Subject)
		require.Equal(t, "anonymous", claims.Role)
		require.Equal(t, sess.ExpiresIn, claims.ExpiresAt)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := auth.Authorize(ctx, "freddie.mercury@gmail.com", "wrong-secret")
		require.ErrorIs(t, err, service.ErrWrongCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := auth.Authorize(ctx, "nobody@gmail.com", "whatever-secret")
		require.ErrorIs(t, err, service.ErrWrongCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		for name, creds := range map[string][2]string{
			"empty id":        {"", "secret"},
			"empty secret":    {"freddie.mercury@gmail.com", ""},
			"both empty":      {"", ""},
			"not email shape": {"freddie mercury", "secret"},
		} {
			t.Run(name, func(t *testing.T) {
				_, err := auth.Authorize(ctx, creds[0], creds[1])
				require.ErrorIs(t, err, service.ErrMissingCredentials)
			})
		}
	})
}

// recordingStore fails loudly if the service reaches the store at all. Used
// to prove that malformed input short-circuits before any store call.
type recordingStore struct {
	store.Store
	t *testing.T
}

type recordingCredentials struct {
	store.Credentials
	t *testing.T
}

func (r *recordingStore) Credentials() store.Credentials {
	return &recordingCredentials{t: r.t}
}

func (r *recordingCredentials) Authenticate(context.Context, string, string) (domain.Grant, error) {
	r.t.Fatal("store contacted for structurally invalid credentials")
	return domain.Grant{}, nil
}

func (r *recordingCredentials) ValidateRefreshToken(context.Context, uuid.UUID) (domain.Grant, error) {
	r.t.Fatal("store contacted for structurally invalid refresh token")
	return domain.Grant{}, nil
}

func TestAuthorizeShortCircuitsBeforeStore(t *testing.T) {
	auth := service.NewAuthService(&recordingStore{t: t}, newTokenService(t))

	_, err := auth.Authorize(context.Background(), "", "")
	require.ErrorIs(t, err, service.ErrMissingCredentials)

	_, err = auth.Revalidate(context.Background(), "not-a-uuid")
	require.ErrorIs(t, err, service.ErrInvalidRefreshToken)
}

func TestRevalidate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, time.Hour)
	auth := service.NewAuthService(st, newTokenService(t))

	register(t, st, "brian.may@gmail.com", "R3d.Sp3c14l!Gu1t4r")
	first, err := auth.Authorize(ctx, "brian.may@gmail.com", "R3d.Sp3c14l!Gu1t4r")
	require.NoError(t, err)

	t.Run("valid token rotates", func(t *testing.T) {
		next, err := auth.Revalidate(ctx, first.RefreshToken.String())
		require.NoError(t, err)
		require.NotEqual(t, first.RefreshToken, next.RefreshToken)
		require.NotEmpty(t, next.AccessToken)

		// The redeemed token is single use.
		_, err = auth.Revalidate(ctx, first.RefreshToken.String())
		require.ErrorIs(t, err, service.ErrWrongCredentials)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := auth.Revalidate(ctx, uuid.NewString())
		require.ErrorIs(t, err, service.ErrWrongCredentials)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := auth.Revalidate(ctx, "definitely-not-a-uuid")
		require.ErrorIs(t, err, service.ErrInvalidRefreshToken)
	})
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, time.Hour)
	accounts := service.NewAccountService(st)

	t.Run("valid registration", func(t *testing.T) {
		u, err := accounts.Register(ctx, domain.Registration{
			Email:    "roger.taylor@gmail.com",
			Password: "Dr1v3n.By!You",
		})
		require.NoError(t, err)
		require.Equal(t, "roger.taylor@gmail.com", u.Email)
		require.NotEqual(t, uuid.Nil, u.ID)
	})

	t.Run("duplicate email is a validation failure", func(t *testing.T) {
		_, err := accounts.Register(ctx, domain.Registration{
			Email:    "roger.taylor@gmail.com",
			Password: "An0ther.0ne!Bytes",
		})
		require.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("malformed input", func(t *testing.T) {
		for name, reg := range map[string]domain.Registration{
			"empty email":    {Email: "", Password: "long-enough-pw"},
			"bad email":      {Email: "not an email", Password: "long-enough-pw"},
			"empty password": {Email: "john.deacon@gmail.com", Password: ""},
			"short password": {Email: "john.deacon@gmail.com", Password: "short"},
		} {
			t.Run(name, func(t *testing.T) {
				_, err := accounts.Register(ctx, reg)
				require.ErrorIs(t, err, service.ErrValidation)
			})
		}
	})
}

func TestUserService(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, time.Hour)
	users := service.NewUserService(st)

	a := register(t, st, "a@gmail.com", "long-enough-pw")
	b := register(t, st, "b@gmail.com", "long-enough-pw")

	t.Run("list", func(t *testing.T) {
		all, err := users.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
	})

	t.Run("get", func(t *testing.T) {
		got, err := users.Get(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, a.Email, got.Email)

		got, err = users.Get(ctx, b.ID)
		require.NoError(t, err)
		require.Equal(t, b.Email, got.Email)
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := users.Get(ctx, uuid.New())
		require.True(t, errors.Is(err, store.ErrNotFound))
	})
}
