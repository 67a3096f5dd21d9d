package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"shop-backend/internal/auth"
	"shop-backend/internal/domain"
	"shop-backend/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderService_PlaceOrder(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockOrderRepository, *mocks.MockCartRepository, *mocks.MockPublisher)
		expectedError error
		checkOrder    func(*testing.T, *domain.Order)
		noCheckout    bool
	}{
		{
			name: "successful checkout snapshots the cart total",
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, pub *mocks.MockPublisher) {
				cart := cartFixture(testUserID,
					cartItemFixture(1, 2, 10),
					cartItemFixture(2, 1, 5),
				)
				cartRepo.On("FindByUserID", mock.Anything, testUserID).Return(cart, nil)

				order := orderFixture(testOrderID, testUserID, cart.Total,
					domain.OrderItem{ProductID: 1, Quantity: 2, Subtotal: 20},
					domain.OrderItem{ProductID: 2, Quantity: 1, Subtotal: 5},
				)
				orderRepo.On("CreateFromCart", mock.Anything, cart).Return(order, nil)
				pub.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()
			},
			checkOrder: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, 25.0, order.Total)
				var itemsTotal float64
				for _, item := range order.Items {
					itemsTotal += item.Subtotal
				}
				assert.Equal(t, order.Total, itemsTotal)
				assert.Equal(t, domain.StatusPending, order.Status)
			},
		},
		{
			name: "missing cart is reported as empty",
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, pub *mocks.MockPublisher) {
				cartRepo.On("FindByUserID", mock.Anything, testUserID).Return(nil, domain.ErrCartNotFound)
			},
			expectedError: domain.ErrEmptyCart,
			noCheckout:    true,
		},
		{
			name: "cart with zero items is rejected before any write",
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, pub *mocks.MockPublisher) {
				cartRepo.On("FindByUserID", mock.Anything, testUserID).Return(cartFixture(testUserID), nil)
			},
			expectedError: domain.ErrEmptyCart,
			noCheckout:    true,
		},
		{
			name: "insufficient stock aborts the checkout and names the product",
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, pub *mocks.MockPublisher) {
				cart := cartFixture(testUserID, cartItemFixture(1, 10, 10))
				cartRepo.On("FindByUserID", mock.Anything, testUserID).Return(cart, nil)
				orderRepo.On("CreateFromCart", mock.Anything, cart).
					Return(nil, &domain.InsufficientStockError{ProductName: "Wool Beanie"})
			},
			expectedError: &domain.InsufficientStockError{ProductName: "Wool Beanie"},
		},
		{
			name: "store failure is surfaced unchanged",
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, pub *mocks.MockPublisher) {
				cart := cartFixture(testUserID, cartItemFixture(1, 1, 10))
				cartRepo.On("FindByUserID", mock.Anything, testUserID).Return(cart, nil)
				orderRepo.On("CreateFromCart", mock.Anything, cart).
					Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderRepo := new(mocks.MockOrderRepository)
			cartRepo := new(mocks.MockCartRepository)
			pub := new(mocks.MockPublisher)
			tt.setupMocks(orderRepo, cartRepo, pub)

			service := NewOrderService(orderRepo, cartRepo, pub)
			order, err := service.PlaceOrder(context.Background(), testUserID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				assert.Nil(t, order)
				pub.AssertNotCalled(t, "Publish", mock.Anything, "order.created", mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, order)
				if tt.checkOrder != nil {
					tt.checkOrder(t, order)
				}
			}
			if tt.noCheckout {
				orderRepo.AssertNotCalled(t, "CreateFromCart", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestOrderService_PlaceOrder_PublishesCreatedEvent(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	cartRepo := new(mocks.MockCartRepository)
	pub := new(mocks.MockPublisher)

	cart := cartFixture(testUserID, cartItemFixture(1, 2, 10))
	cartRepo.On("FindByUserID", mock.Anything, testUserID).Return(cart, nil)
	orderRepo.On("CreateFromCart", mock.Anything, cart).
		Return(orderFixture(testOrderID, testUserID, cart.Total), nil)

	published := make(chan domain.OrderCreatedEvent, 1)
	pub.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).
		Run(func(args mock.Arguments) {
			published <- args.Get(2).(domain.OrderCreatedEvent)
		})

	service := NewOrderService(orderRepo, cartRepo, pub)
	order, err := service.PlaceOrder(context.Background(), testUserID)
	assert.NoError(t, err)

	select {
	case evt := <-published:
		assert.Equal(t, order.ID, evt.OrderID)
		assert.Equal(t, order.Total, evt.Total)
		assert.Equal(t, testUserID, evt.UserID)
	case <-time.After(time.Second):
		t.Fatal("order.created event was not published")
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	owner := auth.Principal{UserID: testUserID, Role: domain.RoleUser}
	admin := auth.Principal{UserID: 99, Role: domain.RoleAdmin}
	stranger := auth.Principal{UserID: 42, Role: domain.RoleUser}

	tests := []struct {
		name          string
		principal     auth.Principal
		setupMocks    func(*mocks.MockOrderRepository)
		expectedError error
	}{
		{
			name:      "owner can read their order",
			principal: owner,
			setupMocks: func(orderRepo *mocks.MockOrderRepository) {
				orderRepo.On("FindByID", mock.Anything, testOrderID).
					Return(orderFixture(testOrderID, testUserID, 25), nil)
			},
		},
		{
			name:      "admin can read any order",
			principal: admin,
			setupMocks: func(orderRepo *mocks.MockOrderRepository) {
				orderRepo.On("FindByID", mock.Anything, testOrderID).
					Return(orderFixture(testOrderID, testUserID, 25), nil)
			},
		},
		{
			name:      "foreign user is rejected",
			principal: stranger,
			setupMocks: func(orderRepo *mocks.MockOrderRepository) {
				orderRepo.On("FindByID", mock.Anything, testOrderID).
					Return(orderFixture(testOrderID, testUserID, 25), nil)
			},
			expectedError: domain.ErrNotOwner,
		},
		{
			name:      "unknown order",
			principal: owner,
			setupMocks: func(orderRepo *mocks.MockOrderRepository) {
				orderRepo.On("FindByID", mock.Anything, testOrderID).
					Return(nil, domain.ErrOrderNotFound)
			},
			expectedError: domain.ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderRepo := new(mocks.MockOrderRepository)
			tt.setupMocks(orderRepo)

			service := NewOrderService(orderRepo, new(mocks.MockCartRepository), new(mocks.MockPublisher))
			order, err := service.GetOrder(context.Background(), tt.principal, testOrderID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testOrderID, order.ID)
			}
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	t.Run("invalid status never reaches the store", func(t *testing.T) {
		orderRepo := new(mocks.MockOrderRepository)
		service := NewOrderService(orderRepo, new(mocks.MockCartRepository), new(mocks.MockPublisher))

		order, err := service.UpdateStatus(context.Background(), testOrderID, "teleported")
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
		assert.Nil(t, order)
		orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("valid transition updates and publishes", func(t *testing.T) {
		orderRepo := new(mocks.MockOrderRepository)
		pub := new(mocks.MockPublisher)

		updated := orderFixture(testOrderID, testUserID, 25)
		updated.Status = domain.StatusShipped
		orderRepo.On("UpdateStatus", mock.Anything, testOrderID, domain.StatusShipped).
			Return(updated, nil)

		published := make(chan domain.OrderStatusChangedEvent, 1)
		pub.On("Publish", mock.Anything, "order.status_changed", mock.Anything).Return(nil).
			Run(func(args mock.Arguments) {
				published <- args.Get(2).(domain.OrderStatusChangedEvent)
			})

		service := NewOrderService(orderRepo, new(mocks.MockCartRepository), pub)
		order, err := service.UpdateStatus(context.Background(), testOrderID, "shipped")
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusShipped, order.Status)

		select {
		case evt := <-published:
			assert.Equal(t, testOrderID, evt.OrderID)
			assert.Equal(t, domain.StatusShipped, evt.Status)
		case <-time.After(time.Second):
			t.Fatal("order.status_changed event was not published")
		}
	})

	t.Run("terminal status error is propagated", func(t *testing.T) {
		orderRepo := new(mocks.MockOrderRepository)
		orderRepo.On("UpdateStatus", mock.Anything, testOrderID, domain.StatusPaid).
			Return(nil, domain.ErrStatusFinal)

		service := NewOrderService(orderRepo, new(mocks.MockCartRepository), new(mocks.MockPublisher))
		_, err := service.UpdateStatus(context.Background(), testOrderID, "paid")
		assert.ErrorIs(t, err, domain.ErrStatusFinal)
	})
}

func TestOrderService_ListByUser(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	orderRepo.On("FindByUserID", mock.Anything, testUserID).Return([]domain.Order{
		*orderFixture(2, testUserID, 30),
		*orderFixture(1, testUserID, 25),
	}, nil)

	service := NewOrderService(orderRepo, new(mocks.MockCartRepository), new(mocks.MockPublisher))
	orders, err := service.ListByUser(context.Background(), testUserID)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, uint64(2), orders[0].ID)
}
