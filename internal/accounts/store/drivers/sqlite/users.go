package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/google/uuid"
)

type usersRepo struct {
	db *sql.DB
}

const userColumns = `id, first_name, last_name, email, password_hash, role, created_at, updated_at`

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *usersRepo) GetUserByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id.String(),
	)

	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		id        string
		firstName sql.NullString
		lastName  sql.NullString
		createdAt int64
		updatedAt sql.NullInt64
		u         domain.User
	)

	err := row.Scan(&id, &firstName, &lastName, &u.Email, &u.PasswordHash, &u.Role, &createdAt, &updatedAt)
	if err != nil {
		return domain.User{}, err
	}

	u.ID, err = uuid.Parse(id)
	if err != nil {
		return domain.User{}, err
	}

	u.FirstName = mapNullStringPtr(firstName)
	u.LastName = mapNullStringPtr(lastName)
	u.CreatedAt = fromMillis(createdAt)
	u.UpdatedAt = fromMillisPtr(updatedAt)

	return u, nil
}
