package services

import (
	"context"

	"shop-backend/internal/domain"
	"shop-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]domain.PublicUser, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out, nil
}

// Update changes name, email, role, and optionally the password. Empty fields
// keep their stored value.
func (s *UserService) Update(ctx context.Context, id uint64, name, email, password string, role domain.Role) (domain.PublicUser, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return domain.PublicUser{}, err
	}

	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}
	if role != "" {
		parsed, ok := domain.ParseRole(string(role))
		if !ok {
			return domain.PublicUser{}, domain.ErrInvalidRole
		}
		user.Role = parsed
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return domain.PublicUser{}, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return domain.PublicUser{}, err
	}
	return user.Public(), nil
}

func (s *UserService) Delete(ctx context.Context, id uint64) error {
	return s.users.Delete(ctx, id)
}
