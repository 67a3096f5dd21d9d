package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"shop-backend/internal/auth"
	"shop-backend/internal/domain"
	rabbit "shop-backend/internal/infra/rabbitmq"
	"shop-backend/internal/repository"

	"github.com/go-redis/redis/v8"
)

type OrderService struct {
	orders      repository.OrderRepository
	carts       repository.CartRepository
	publisher   rabbit.PublisherInterface
	redisClient *redis.Client
}

func NewOrderService(orders repository.OrderRepository, carts repository.CartRepository, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		orders:    orders,
		carts:     carts,
		publisher: pub,
	}
}

func (s *OrderService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// PlaceOrder converts the user's cart into an immutable order. The repository
// carries the transaction; this layer decides whether there is anything to
// check out, then reacts to the outcome (events, cache invalidation).
func (s *OrderService) PlaceOrder(ctx context.Context, userID uint64) (*domain.Order, error) {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return nil, domain.ErrEmptyCart
		}
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	order, err := s.orders.CreateFromCart(ctx, cart)
	if err != nil {
		return nil, err
	}

	go s.publishOrderCreated(context.Background(), order)
	s.invalidateProductCache(ctx, order.Items)

	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, principal auth.Principal, id uint64) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != principal.UserID && !principal.IsAdmin() {
		return nil, domain.ErrNotOwner
	}
	return order, nil
}

func (s *OrderService) ListByUser(ctx context.Context, userID uint64) ([]domain.Order, error) {
	return s.orders.FindByUserID(ctx, userID)
}

func (s *OrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.orders.FindAll(ctx)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id uint64, status string) (*domain.Order, error) {
	parsed, ok := domain.ParseOrderStatus(status)
	if !ok {
		return nil, domain.ErrInvalidStatus
	}
	order, err := s.orders.UpdateStatus(ctx, id, parsed)
	if err != nil {
		return nil, err
	}

	go func() {
		evt := domain.OrderStatusChangedEvent{
			OrderID: order.ID,
			Status:  order.Status,
			At:      time.Now(),
		}
		if err := s.publisher.Publish(context.Background(), "order.status_changed", evt); err != nil {
			log.Printf("failed to publish order.status_changed: %v", err)
		}
	}()

	return order, nil
}

func (s *OrderService) publishOrderCreated(ctx context.Context, order *domain.Order) {
	evt := domain.OrderCreatedEvent{
		OrderID:   order.ID,
		Reference: order.Reference,
		UserID:    order.UserID,
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		log.Printf("failed to publish order.created: %v", err)
	}
}

// invalidateProductCache drops the cached entry of every product whose stock
// the order just changed.
func (s *OrderService) invalidateProductCache(ctx context.Context, items []domain.OrderItem) {
	if s.redisClient == nil {
		return
	}
	for _, item := range items {
		s.redisClient.Del(ctx, fmt.Sprintf("product:%d", item.ProductID))
	}
}
