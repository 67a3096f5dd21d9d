package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPaid      OrderStatus = "paid"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case StatusPending, StatusPaid, StatusShipped, StatusDelivered, StatusCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

// Terminal reports whether no further status transition is allowed.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

type Order struct {
	ID        uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Reference string      `json:"reference" gorm:"uniqueIndex;not null"`
	UserID    uint64      `json:"userId" gorm:"index;not null"`
	Total     float64     `json:"total" gorm:"not null"`
	Status    OrderStatus `json:"status" gorm:"type:VARCHAR(20);default:'pending'"`
	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `json:"createdAt" gorm:"autoCreateTime"`
}

// OrderItem is a frozen copy of a cart line at checkout time; it is never
// mutated afterwards. The product name is denormalized so order history
// survives catalog edits.
type OrderItem struct {
	ID          uint64  `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID     uint64  `json:"orderId" gorm:"index;not null"`
	ProductID   uint64  `json:"productId" gorm:"not null"`
	ProductName string  `json:"productName"`
	Quantity    int64   `json:"quantity" gorm:"not null"`
	Subtotal    float64 `json:"subtotal" gorm:"not null"`
}
