package mysql

import (
	"context"
	"errors"
	"log"

	"shop-backend/internal/domain"
	"shop-backend/internal/repository"

	"gorm.io/gorm"
)

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepo{db: db}
}

func (r *cartRepo) FindByUserID(ctx context.Context, userID uint64) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.db.WithContext(ctx).Preload("Items.Product").
		Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCartNotFound
		}
		log.Printf("cart FindByUserID error: %v", err)
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepo) AddItem(ctx context.Context, userID uint64, product *domain.Product, quantity int64) (*domain.Cart, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart domain.Cart
		err := tx.Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cart = domain.Cart{UserID: userID, Total: 0}
			err = tx.Create(&cart).Error
		}
		if err != nil {
			return err
		}

		var item domain.CartItem
		err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).
			First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = domain.CartItem{
				CartID:    cart.ID,
				ProductID: product.ID,
				Quantity:  quantity,
				Subtotal:  float64(quantity) * product.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			// Merge into the existing line instead of duplicating the row.
			merged := item.Quantity + quantity
			if merged <= 0 {
				return domain.ErrInvalidQuantity
			}
			item.Quantity = merged
			item.Subtotal = float64(merged) * product.Price
			if err := tx.Save(&item).Error; err != nil {
				return err
			}
		}

		return recomputeTotal(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return r.FindByUserID(ctx, userID)
}

func (r *cartRepo) RemoveItem(ctx context.Context, userID uint64, itemID uint64) (*domain.Cart, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart domain.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCartNotFound
			}
			return err
		}

		var item domain.CartItem
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCartItemNotFound
			}
			return err
		}
		if item.CartID != cart.ID {
			return domain.ErrNotOwner
		}

		if err := tx.Delete(&item).Error; err != nil {
			return err
		}
		return recomputeTotal(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return r.FindByUserID(ctx, userID)
}

func (r *cartRepo) Clear(ctx context.Context, userID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart domain.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCartNotFound
			}
			return err
		}
		if err := tx.Where("cart_id = ?", cart.ID).
			Delete(&domain.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Model(&cart).Update("total", 0).Error
	})
}

func (r *cartRepo) FindAll(ctx context.Context) ([]domain.Cart, error) {
	var out []domain.Cart
	if err := r.db.WithContext(ctx).Preload("Items").Find(&out).Error; err != nil {
		log.Printf("cart FindAll error: %v", err)
		return nil, err
	}
	return out, nil
}

// recomputeTotal stores the sum of the cart's current subtotals. Summing from
// scratch instead of adjusting the running total keeps the value drift-free.
func recomputeTotal(tx *gorm.DB, cartID uint64) error {
	var total float64
	if err := tx.Model(&domain.CartItem{}).
		Where("cart_id = ?", cartID).
		Select("COALESCE(SUM(subtotal), 0)").
		Scan(&total).Error; err != nil {
		return err
	}
	return tx.Model(&domain.Cart{}).Where("id = ?", cartID).
		Update("total", total).Error
}
