package service

import (
	"context"

	"meallink/internal/entity"
	"meallink/internal/repository"

	"github.com/google/uuid"
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

type UserWithRoles struct {
	User  entity.User
	Roles []entity.Role
}

func (s *UserService) Get(ctx context.Context, userID uuid.UUID) (*UserWithRoles, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	roles, err := s.users.RolesOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UserWithRoles{User: *user, Roles: roles}, nil
}

func (s *UserService) List(ctx context.Context) ([]UserWithRoles, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserWithRoles, 0, len(users))
	for i := range users {
		roles, err := s.users.RolesOf(ctx, users[i].ID)
		if err != nil {
			return nil, err
		}
		out = append(out, UserWithRoles{User: users[i], Roles: roles})
	}
	return out, nil
}

// AssignRole grants a role to a user. Granting an already-held role is a
// no-op rather than an error.
func (s *UserService) AssignRole(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	return s.users.AssignRole(ctx, userID, role)
}
