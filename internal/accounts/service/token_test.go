package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type failingSigner struct{}

func (failingSigner) Alg() string                  { return "HS512" }
func (failingSigner) Sign(jwtx.Claims) (string, error) { return "", errors.New("hsm offline") }

func TestTokenServiceIssue(t *testing.T) {
	tokens := newTokenService(t)
	id := domain.Identity{SubjectID: uuid.New(), Role: domain.RoleAdmin}

	before := time.Now().UTC()
	token, claims, err := tokens.Issue(id)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, id.SubjectID, claims.Subject)
	require.Equal(t, "admin", claims.Role)

	// Expiry lands TTL away from now, in epoch milliseconds.
	require.GreaterOrEqual(t, claims.ExpiresAt, before.Add(15*time.Minute).UnixMilli())
	require.LessOrEqual(t, claims.ExpiresAt, time.Now().UTC().Add(15*time.Minute).UnixMilli())
}

func TestTokenServiceIssueSession(t *testing.T) {
	tokens := newTokenService(t)

	expires := time.Now().UTC().Add(24 * time.Hour)
	grant := domain.Grant{
		UserID:              uuid.New(),
		Role:                "anonymous",
		RefreshToken:        uuid.New(),
		RefreshTokenExpires: expires,
	}

	sess, err := tokens.IssueSession(grant)
	require.NoError(t, err)
	require.Equal(t, "Bearer", sess.TokenType)
	require.Equal(t, grant.RefreshToken, sess.RefreshToken)
	require.Equal(t, expires.UnixMilli(), sess.RefreshTokenExpires)
	require.NotEmpty(t, sess.AccessToken)
}

func TestTokenServiceSigningFailure(t *testing.T) {
	tokens := service.NewTokenService(failingSigner{}, time.Minute)

	_, _, err := tokens.Issue(domain.Identity{SubjectID: uuid.New(), Role: domain.RoleAnonymous})
	require.ErrorIs(t, err, service.ErrTokenCreation)

	_, err = tokens.IssueSession(domain.Grant{UserID: uuid.New(), Role: "anonymous"})
	require.ErrorIs(t, err, service.ErrTokenCreation)
}
