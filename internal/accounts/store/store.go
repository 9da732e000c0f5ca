package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrInvalidCredentials covers unknown email, wrong secret and
	// unknown/expired refresh tokens alike. The store does not say which,
	// so nothing above it can leak the distinction either.
	ErrInvalidCredentials = errors.New("store: invalid credentials")
)

// Store is the credential store interface the auth core calls into. Concrete
// drivers (sqlite here, postgres elsewhere) implement it. The store owns
// password hashing, user persistence and the full refresh-token lifecycle;
// the auth core never sees a password hash or mints a refresh token itself.
type Store interface {
	Credentials() Credentials
	Users() Users

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Credentials interface {
	// Authenticate verifies an email/secret pair and, on success, mints a
	// fresh refresh token for the user. Unknown email and wrong secret both
	// come back as ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, secret string) (domain.Grant, error)

	// ValidateRefreshToken redeems a refresh token. A valid token is rotated:
	// the returned grant carries a replacement token and the presented one
	// stops working. Unknown and expired tokens both come back as
	// ErrInvalidCredentials.
	ValidateRefreshToken(ctx context.Context, token uuid.UUID) (domain.Grant, error)

	// RegisterUser hashes the password and inserts a new user record.
	// A duplicate email returns ErrAlreadyExists.
	RegisterUser(ctx context.Context, reg domain.Registration) (domain.User, error)

	// DeleteExpiredRefreshTokens is housekeeping; returns rows removed.
	DeleteExpiredRefreshTokens(ctx context.Context) (int64, error)
}

type Users interface {
	// ListUsers returns all users ordered by creation date (oldest first).
	ListUsers(ctx context.Context) ([]domain.User, error)

	// GetUserByID returns a user by id or ErrNotFound.
	GetUserByID(ctx context.Context, id uuid.UUID) (domain.User, error)
}
