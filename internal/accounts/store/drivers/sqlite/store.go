package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/store"

	_ "modernc.org/sqlite"
)

// DefaultRefreshTokenTTL is how long a minted refresh token stays valid.
// Longer-lived than access tokens for user convenience.
const DefaultRefreshTokenTTL = 7 * 24 * time.Hour

type Store struct {
	db         *sql.DB
	refreshTTL time.Duration
}

func NewStore(dsn string, refreshTTL time.Duration) (*Store, error) {
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTokenTTL
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, refreshTTL: refreshTTL}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Credentials() store.Credentials {
	return &credentialsRepo{db: s.db, refreshTTL: s.refreshTTL}
}

func (s *Store) Users() store.Users { return &usersRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Timestamps are stored as epoch milliseconds so they round-trip exactly
// with the millisecond expiries the API exposes.

func toMillis(t time.Time) int64 { return t.UnixMilli() }

func fromMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }

func fromMillisPtr(ms sql.NullInt64) *time.Time {
	if !ms.Valid {
		return nil
	}
	t := fromMillis(ms.Int64)
	return &t
}

func mapNullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	val := ns.String
	return &val
}

func mapOptionalString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
