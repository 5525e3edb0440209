package service

import (
	"context"
	"errors"

	"github.com/labtrack/labtrack-service/internal/domain"
	"github.com/labtrack/labtrack-service/internal/repository"
	apperrors "github.com/labtrack/labtrack-service/pkg/util/errorutil"
)

// UserService exposes account administration.
type UserService struct {
	users repository.UserRepository
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns every account, newest first.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Toggle flips the active flag of an account.
func (s *UserService) Toggle(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "User", id)
	}
	user.IsActive = !user.IsActive
	if err := s.users.Update(ctx, user); err != nil {
		return nil, notFound(err, "User", id)
	}
	return user, nil
}

// Delete removes an account that nothing references any more.
func (s *UserService) Delete(ctx context.Context, id string) error {
	err := s.users.Delete(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrReferenced):
		return apperrors.NewConflict("User still owns assets, tickets or comments", map[string]any{"id": id})
	default:
		return notFound(err, "User", id)
	}
}
