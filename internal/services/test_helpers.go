package services

import (
	"time"

	"shop-backend/internal/domain"
)

func cartFixture(userID uint64, items ...domain.CartItem) *domain.Cart {
	cart := &domain.Cart{
		ID:     1,
		UserID: userID,
		Items:  items,
	}
	cart.Total = cart.ItemsTotal()
	return cart
}

func cartItemFixture(productID uint64, quantity int64, price float64) domain.CartItem {
	return domain.CartItem{
		ID:        productID,
		CartID:    1,
		ProductID: productID,
		Quantity:  quantity,
		Subtotal:  float64(quantity) * price,
	}
}

func orderFixture(id uint64, userID uint64, total float64, items ...domain.OrderItem) *domain.Order {
	return &domain.Order{
		ID:        id,
		Reference: "20240101000000-fixture",
		UserID:    userID,
		Total:     total,
		Status:    domain.StatusPending,
		Items:     items,
		CreatedAt: time.Now(),
	}
}

func productFixture(id uint64, name string, price float64, stock int64) *domain.Product {
	return &domain.Product{
		ID:    id,
		Name:  name,
		Price: price,
		Stock: stock,
	}
}

const (
	testUserID  = uint64(7)
	testOrderID = uint64(1)
)
