package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) AddCartItem(c *gin.Context) {
	principal, _ := principalFrom(c)

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := h.carts.AddItem(c.Request.Context(), principal.UserID, req.ProductID, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item added to cart", "cart": cart})
}

func (h *Handler) GetCart(c *gin.Context) {
	principal, _ := principalFrom(c)

	cart, err := h.carts.GetCart(c.Request.Context(), principal.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) RemoveCartItem(c *gin.Context) {
	principal, _ := principalFrom(c)

	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}
	cart, err := h.carts.RemoveItem(c.Request.Context(), principal.UserID, itemID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item removed from cart", "cart": cart})
}

func (h *Handler) ClearCart(c *gin.Context) {
	principal, _ := principalFrom(c)

	if err := h.carts.Clear(c.Request.Context(), principal.UserID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

func (h *Handler) ListCarts(c *gin.Context) {
	carts, err := h.carts.ListAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, carts)
}
