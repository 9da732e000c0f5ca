package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	FirstName    *string
	LastName     *string
	Email        string
	PasswordHash string // argon2id encoded
	Role         string // free-text label, parsed via ParseRole
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// Registration carries the validated input for creating a new account.
// Password is the plaintext secret; hashing happens in the store.
type Registration struct {
	FirstName *string
	LastName  *string
	Email     string
	Password  string
}
