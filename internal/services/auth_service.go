package services

import (
	"context"
	"errors"

	"shop-backend/internal/auth"
	"shop-backend/internal/domain"
	"shop-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type AuthService struct {
	users  repository.UserRepository
	tokens *auth.TokenIssuer
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new account. A role other than USER is honored only
// when the request comes from an authenticated admin.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role domain.Role, byAdmin bool) (domain.PublicUser, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return domain.PublicUser{}, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.PublicUser{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return domain.PublicUser{}, err
	}

	if role == "" || !byAdmin {
		role = domain.RoleUser
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return domain.PublicUser{}, err
	}
	return user.Public(), nil
}

// Login verifies the credentials and returns a signed access token along with
// the safe user view.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.PublicUser, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", domain.PublicUser{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.PublicUser{}, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", domain.PublicUser{}, err
	}
	return token, user.Public(), nil
}
