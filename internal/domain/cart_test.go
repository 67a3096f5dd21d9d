package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_ItemsTotal(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{ProductID: 1, Quantity: 2, Subtotal: 20},
			{ProductID: 2, Quantity: 1, Subtotal: 5},
		},
	}
	assert.Equal(t, 25.0, cart.ItemsTotal())

	cart.Items = cart.Items[:1]
	assert.Equal(t, 20.0, cart.ItemsTotal())

	cart.Items = nil
	assert.Equal(t, 0.0, cart.ItemsTotal())
}

func TestCart_FindItem(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{ID: 10, ProductID: 1, Quantity: 2},
			{ID: 11, ProductID: 2, Quantity: 1},
		},
	}

	item := cart.FindItem(2)
	assert.NotNil(t, item)
	assert.Equal(t, uint64(11), item.ID)

	assert.Nil(t, cart.FindItem(99))
}

func TestOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "paid", "shipped", "delivered", "cancelled"} {
		_, ok := ParseOrderStatus(valid)
		assert.True(t, ok, valid)
	}
	_, ok := ParseOrderStatus("returned")
	assert.False(t, ok)

	assert.True(t, StatusDelivered.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusShipped.Terminal())
}
