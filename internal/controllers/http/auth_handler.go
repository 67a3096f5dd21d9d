package http

import (
	"net/http"

	"shop-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// An admin token on the request unlocks role assignment; everyone else
	// registers as a plain user.
	byAdmin := false
	if principal, ok := bearerPrincipal(c, h.tokens); ok {
		byAdmin = principal.IsAdmin()
	}

	user, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password, domain.Role(req.Role), byAdmin)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user registered", "user": user})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "login successful", "token": token, "user": user})
}
