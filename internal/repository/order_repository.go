package repository

import (
	"context"

	"shop-backend/internal/domain"
)

type OrderRepository interface {
	// CreateFromCart runs the checkout transaction: it persists the order and
	// its item snapshots, decrements stock, and empties the cart, all
	// atomically. On any failure the store is left untouched.
	CreateFromCart(ctx context.Context, cart *domain.Cart) (*domain.Order, error)
	FindByID(ctx context.Context, id uint64) (*domain.Order, error)
	FindByUserID(ctx context.Context, userID uint64) ([]domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id uint64, status domain.OrderStatus) (*domain.Order, error)
}
