package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
)

const minPasswordLength = 8

// AccountService handles account registration.
type AccountService struct {
	store store.Store
}

func NewAccountService(st store.Store) *AccountService {
	return &AccountService{store: st}
}

// Register creates a new account from a registration payload. The payload is
// validated structurally first; a duplicate email surfaces as a validation
// failure rather than leaking store internals.
func (s *AccountService) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	if err := validateRegistration(reg); err != nil {
		return domain.User{}, err
	}

	user, err := s.store.Credentials().RegisterUser(ctx, reg)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, fmt.Errorf("%w: email already registered", ErrValidation)
		}
		return domain.User{}, fmt.Errorf("register user: %w", err)
	}

	return user, nil
}

func validateRegistration(reg domain.Registration) error {
	if reg.Email == "" || reg.Password == "" {
		return fmt.Errorf("%w: email and password are required", ErrValidation)
	}
	if _, err := mail.ParseAddress(reg.Email); err != nil {
		return fmt.Errorf("%w: malformed email", ErrValidation)
	}
	if len(reg.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}
	return nil
}
