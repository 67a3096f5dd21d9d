package repository

import (
	"context"

	"shop-backend/internal/domain"
)

type CartRepository interface {
	// FindByUserID loads the user's cart with items and product previews.
	// Returns domain.ErrCartNotFound when the user has no cart yet.
	FindByUserID(ctx context.Context, userID uint64) (*domain.Cart, error)
	// AddItem creates the cart lazily, merges quantity into an existing line
	// for the same product, and recomputes the cart total, in one transaction.
	AddItem(ctx context.Context, userID uint64, product *domain.Product, quantity int64) (*domain.Cart, error)
	// RemoveItem deletes one line and recomputes the total from the remaining
	// subtotals. Returns domain.ErrNotOwner when the line is in someone
	// else's cart.
	RemoveItem(ctx context.Context, userID uint64, itemID uint64) (*domain.Cart, error)
	// Clear deletes every line and resets the total to zero.
	Clear(ctx context.Context, userID uint64) error
	FindAll(ctx context.Context) ([]domain.Cart, error)
}
