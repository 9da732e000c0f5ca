package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/google/uuid"
)

// AuthService verifies credentials and redeems refresh tokens, producing
// bearer sessions. It validates shape before touching the store so malformed
// requests never cost a database round trip.
type AuthService struct {
	store  store.Store
	tokens *TokenService
}

func NewAuthService(st store.Store, tokens *TokenService) *AuthService {
	return &AuthService{store: st, tokens: tokens}
}

// Authorize exchanges an email/secret pair for a session. Structurally
// invalid input fails with ErrMissingCredentials before the store is called;
// every store failure collapses into ErrWrongCredentials so callers can't
// distinguish an unknown email from a wrong secret.
func (s *AuthService) Authorize(ctx context.Context, clientID, clientSecret string) (domain.Session, error) {
	if err := validateCredentialShape(clientID, clientSecret); err != nil {
		return domain.Session{}, err
	}

	grant, err := s.store.Credentials().Authenticate(ctx, clientID, clientSecret)
	if err != nil {
		if !errors.Is(err, store.ErrInvalidCredentials) && !errors.Is(err, store.ErrNotFound) {
			slog.ErrorContext(ctx, "credential store authenticate failed", "error", err)
		}
		return domain.Session{}, ErrWrongCredentials
	}

	return s.tokens.IssueSession(grant)
}

// Revalidate redeems a refresh token for a new session. The presented token
// is consumed whether or not it yields a session; the store rotates in a
// replacement on success.
func (s *AuthService) Revalidate(ctx context.Context, refreshToken string) (domain.Session, error) {
	token, err := uuid.Parse(strings.TrimSpace(refreshToken))
	if err != nil {
		return domain.Session{}, ErrInvalidRefreshToken
	}

	grant, err := s.store.Credentials().ValidateRefreshToken(ctx, token)
	if err != nil {
		if !errors.Is(err, store.ErrInvalidCredentials) && !errors.Is(err, store.ErrNotFound) {
			slog.ErrorContext(ctx, "refresh token validation failed", "error", err)
		}
		return domain.Session{}, ErrWrongCredentials
	}

	return s.tokens.IssueSession(grant)
}

// validateCredentialShape enforces the preconditions for an authorize call:
// a non-empty email-shaped clientId and a non-empty clientSecret.
func validateCredentialShape(clientID, clientSecret string) error {
	if clientID == "" || clientSecret == "" {
		return ErrMissingCredentials
	}
	if _, err := mail.ParseAddress(clientID); err != nil {
		return ErrMissingCredentials
	}
	return nil
}
