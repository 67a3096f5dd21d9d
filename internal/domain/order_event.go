package domain

import "time"

type OrderCreatedEvent struct {
	OrderID   uint64    `json:"orderId"`
	Reference string    `json:"reference"`
	UserID    uint64    `json:"userId"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

type OrderStatusChangedEvent struct {
	OrderID uint64      `json:"orderId"`
	Status  OrderStatus `json:"status"`
	At      time.Time   `json:"at"`
}
