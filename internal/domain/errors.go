package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrOrderNotFound    = errors.New("order not found")

	ErrEmptyCart       = errors.New("cart is empty")
	ErrEmailTaken      = errors.New("email already registered")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrInvalidRole     = errors.New("invalid role")
	ErrStatusFinal     = errors.New("order status can no longer change")
	ErrNotOwner        = errors.New("resource belongs to another user")

	ErrInvalidCredentials = errors.New("invalid email or password")
)

// InsufficientStockError aborts the whole checkout transaction; it names the
// product that could not be fulfilled.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product: %s", e.ProductName)
}
