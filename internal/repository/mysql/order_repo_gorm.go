package mysql

import (
	"context"
	"errors"
	"log"
	"time"

	"shop-backend/internal/domain"
	"shop-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func newOrderReference() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// CreateFromCart converts the cart into an immutable order inside one
// transaction. Stock is re-read FOR UPDATE per item so concurrent checkouts
// against the same product serialize on the row lock; the first item that
// cannot be fulfilled rolls the whole transaction back.
func (r *orderRepo) CreateFromCart(ctx context.Context, cart *domain.Cart) (*domain.Order, error) {
	order := &domain.Order{
		Reference: newOrderReference(),
		UserID:    cart.UserID,
		Total:     cart.Total,
		Status:    domain.StatusPending,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, item := range cart.Items {
			var product domain.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrProductNotFound
				}
				return err
			}

			if product.Stock < item.Quantity {
				return &domain.InsufficientStockError{ProductName: product.Name}
			}

			if err := tx.Model(&product).
				Update("stock", product.Stock-item.Quantity).Error; err != nil {
				return err
			}

			snapshot := domain.OrderItem{
				OrderID:     order.ID,
				ProductID:   item.ProductID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				Subtotal:    item.Subtotal,
			}
			if err := tx.Create(&snapshot).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, snapshot)
		}

		if err := tx.Where("cart_id = ?", cart.ID).
			Delete(&domain.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Cart{}).Where("id = ?", cart.ID).
			Update("total", 0).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepo) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		log.Printf("order FindByID error: %v", err)
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindByUserID(ctx context.Context, userID uint64) ([]domain.Order, error) {
	var out []domain.Order
	if err := r.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").Find(&out).Error; err != nil {
		log.Printf("order FindByUserID error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindAll(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := r.db.WithContext(ctx).Preload("Items").
		Order("created_at DESC").Find(&out).Error; err != nil {
		log.Printf("order FindAll error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uint64, status domain.OrderStatus) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&o, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrOrderNotFound
			}
			return err
		}
		if o.Status.Terminal() {
			return domain.ErrStatusFinal
		}
		o.Status = status
		return tx.Model(&o).Update("status", status).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}
