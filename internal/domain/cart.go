package domain

import "time"

type Cart struct {
	ID        uint64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint64     `json:"userId" gorm:"uniqueIndex;not null"`
	Total     float64    `json:"total" gorm:"not null;default:0"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

type CartItem struct {
	ID        uint64   `json:"id" gorm:"primaryKey;autoIncrement"`
	CartID    uint64   `json:"cartId" gorm:"index;uniqueIndex:idx_cart_product;not null"`
	ProductID uint64   `json:"productId" gorm:"uniqueIndex:idx_cart_product;not null"`
	Quantity  int64    `json:"quantity" gorm:"not null"`
	Subtotal  float64  `json:"subtotal" gorm:"not null"`
	Product   *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// FindItem returns the cart's line for productID, or nil.
func (c *Cart) FindItem(productID uint64) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// ItemsTotal recomputes the cart total from its current item set. Every
// mutating cart operation stores this value rather than adjusting the running
// total incrementally.
func (c *Cart) ItemsTotal() float64 {
	var t float64
	for i := range c.Items {
		t += c.Items[i].Subtotal
	}
	return t
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
