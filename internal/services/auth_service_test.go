package services

import (
	"context"
	"testing"
	"time"

	"shop-backend/internal/auth"
	"shop-backend/internal/domain"
	"shop-backend/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer([]byte("test-secret"), time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	t.Run("new account is persisted with a hashed password", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "ana@example.com").
			Return(nil, domain.ErrUserNotFound)
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
			Return(nil).Run(func(args mock.Arguments) {
			user := args.Get(1).(*domain.User)
			user.ID = 1
			assert.NotEqual(t, "secret123", user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
		})

		service := NewAuthService(userRepo, testIssuer())
		user, err := service.Register(context.Background(), "Ana", "ana@example.com", "secret123", "", false)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.Equal(t, "ana@example.com", user.Email)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "ana@example.com").
			Return(&domain.User{ID: 1, Email: "ana@example.com"}, nil)

		service := NewAuthService(userRepo, testIssuer())
		_, err := service.Register(context.Background(), "Ana", "ana@example.com", "secret123", "", false)
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("role request from a non-admin is ignored", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotFound)
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		service := NewAuthService(userRepo, testIssuer())
		user, err := service.Register(context.Background(), "Eve", "eve@example.com", "secret123", domain.RoleAdmin, false)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleUser, user.Role)
	})

	t.Run("admin may assign a role", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotFound)
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		service := NewAuthService(userRepo, testIssuer())
		user, err := service.Register(context.Background(), "Bo", "bo@example.com", "secret123", domain.RoleAdmin, true)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(t, err)
	stored := &domain.User{
		ID:           1,
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}

	t.Run("valid credentials produce a verifiable token", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "ana@example.com").Return(stored, nil)

		issuer := testIssuer()
		service := NewAuthService(userRepo, issuer)
		token, user, err := service.Login(context.Background(), "ana@example.com", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, stored.Email, user.Email)

		principal, err := issuer.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, stored.ID, principal.UserID)
		assert.Equal(t, domain.RoleUser, principal.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "ana@example.com").Return(stored, nil)

		service := NewAuthService(userRepo, testIssuer())
		_, _, err := service.Login(context.Background(), "ana@example.com", "nope")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").
			Return(nil, domain.ErrUserNotFound)

		service := NewAuthService(userRepo, testIssuer())
		_, _, err := service.Login(context.Background(), "ghost@example.com", "secret123")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
