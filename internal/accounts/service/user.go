package service

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/google/uuid"
)

// UserService serves read-only account lookups behind the bearer middleware.
type UserService struct {
	store store.Store
}

func NewUserService(st store.Store) *UserService {
	return &UserService{store: st}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.store.Users().ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get looks up a single account. store.ErrNotFound passes through for the
// HTTP layer to map to 404.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	user, err := s.store.Users().GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}
