package services

import (
	"context"

	"shop-backend/internal/domain"
	"shop-backend/internal/repository"
)

type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// AddItem validates the quantity, resolves the product at its current price,
// and delegates the merge-or-insert plus total recompute to the repository.
func (s *CartService) AddItem(ctx context.Context, userID uint64, productID uint64, quantity int64) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return s.carts.AddItem(ctx, userID, product, quantity)
}

func (s *CartService) GetCart(ctx context.Context, userID uint64) (*domain.Cart, error) {
	return s.carts.FindByUserID(ctx, userID)
}

func (s *CartService) RemoveItem(ctx context.Context, userID uint64, itemID uint64) (*domain.Cart, error) {
	return s.carts.RemoveItem(ctx, userID, itemID)
}

func (s *CartService) Clear(ctx context.Context, userID uint64) error {
	return s.carts.Clear(ctx, userID)
}

func (s *CartService) ListAll(ctx context.Context) ([]domain.Cart, error) {
	return s.carts.FindAll(ctx)
}
