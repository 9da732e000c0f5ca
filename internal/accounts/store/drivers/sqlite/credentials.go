package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/google/uuid"
)

type credentialsRepo struct {
	db         *sql.DB
	refreshTTL time.Duration
}

func (r *credentialsRepo) Authenticate(ctx context.Context, email, secret string) (domain.Grant, error) {
	var (
		id   string
		role string
		hash string
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT id, role, password_hash FROM users WHERE email = ?`, email,
	).Scan(&id, &role, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Grant{}, store.ErrInvalidCredentials
	}
	if err != nil {
		return domain.Grant{}, err
	}

	if err := cryptox.VerifyPassword(secret, hash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.Grant{}, store.ErrInvalidCredentials
		}
		return domain.Grant{}, err
	}

	userID, err := uuid.Parse(id)
	if err != nil {
		return domain.Grant{}, err
	}

	return r.mintRefreshToken(ctx, r.db, userID, role, time.Now().UTC())
}

func (r *credentialsRepo) ValidateRefreshToken(ctx context.Context, token uuid.UUID) (domain.Grant, error) {
	now := time.Now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Grant{}, err
	}
	defer func() { _ = tx.Rollback() }() // safe after commit

	var (
		userID    string
		role      string
		expiresAt int64
	)

	err = tx.QueryRowContext(ctx,
		`SELECT rt.user_id, u.role, rt.expires_at
		   FROM refresh_tokens AS rt
		   JOIN users AS u ON u.id = rt.user_id
		  WHERE rt.token = ?`, token.String(),
	).Scan(&userID, &role, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Grant{}, store.ErrInvalidCredentials
	}
	if err != nil {
		return domain.Grant{}, err
	}

	// A presented token is single-use: valid or expired, it never works twice.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM refresh_tokens WHERE token = ?`, token.String(),
	); err != nil {
		return domain.Grant{}, err
	}

	if now.UnixMilli() >= expiresAt {
		_ = tx.Commit() // keep the delete
		return domain.Grant{}, store.ErrInvalidCredentials
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.Grant{}, err
	}

	grant, err := r.mintRefreshToken(ctx, tx, uid, role, now)
	if err != nil {
		return domain.Grant{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Grant{}, err
	}
	return grant, nil
}

func (r *credentialsRepo) RegisterUser(ctx context.Context, reg domain.Registration) (domain.User, error) {
	hash, err := cryptox.HashPassword(reg.Password)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		ID:        uuid.New(),
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Email:     reg.Email,
		Role:      domain.RoleAnonymous.String(),
		CreatedAt: time.Now().UTC(),
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO users (id, first_name, last_name, email, password_hash, role, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID.String(),
		mapOptionalString(u.FirstName),
		mapOptionalString(u.LastName),
		u.Email,
		hash,
		u.Role,
		toMillis(u.CreatedAt),
	)
	if isUniqueViolation(err) {
		return domain.User{}, store.ErrAlreadyExists
	}
	if err != nil {
		return domain.User{}, err
	}

	return u, nil
}

func (r *credentialsRepo) DeleteExpiredRefreshTokens(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM refresh_tokens WHERE expires_at <= ?`,
		toMillis(time.Now().UTC()),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// execer lets mintRefreshToken run inside or outside a transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *credentialsRepo) mintRefreshToken(
	ctx context.Context,
	db execer,
	userID uuid.UUID,
	role string,
	now time.Time,
) (domain.Grant, error) {
	grant := domain.Grant{
		UserID:              userID,
		Role:                role,
		RefreshToken:        uuid.New(),
		RefreshTokenExpires: now.Add(r.refreshTTL),
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO refresh_tokens (token, user_id, expires_at, created_at)
		 VALUES (?, ?, ?, ?)`,
		grant.RefreshToken.String(),
		userID.String(),
		toMillis(grant.RefreshTokenExpires),
		toMillis(now),
	)
	if err != nil {
		return domain.Grant{}, err
	}

	return grant, nil
}
