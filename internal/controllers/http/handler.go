package http

import (
	"errors"
	"log"
	"net/http"

	"shop-backend/internal/auth"
	"shop-backend/internal/domain"
	"shop-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authService *services.AuthService
	users       *services.UserService
	products    *services.ProductService
	carts       *services.CartService
	orders      *services.OrderService
	tokens      *auth.TokenIssuer
}

func NewHandler(
	authService *services.AuthService,
	users *services.UserService,
	products *services.ProductService,
	carts *services.CartService,
	orders *services.OrderService,
	tokens *auth.TokenIssuer,
) *Handler {
	return &Handler{
		authService: authService,
		users:       users,
		products:    products,
		carts:       carts,
		orders:      orders,
		tokens:      tokens,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)

	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)

	adminProducts := r.Group("/products", RequireAuth(h.tokens), RequireRole(domain.RoleAdmin))
	adminProducts.POST("", h.CreateProduct)
	adminProducts.PUT("/:id", h.UpdateProduct)
	adminProducts.DELETE("/:id", h.DeleteProduct)

	cart := r.Group("/cart", RequireAuth(h.tokens))
	cart.POST("/add", h.AddCartItem)
	cart.GET("", h.GetCart)
	cart.DELETE("/remove/:itemId", h.RemoveCartItem)
	cart.DELETE("/clear", h.ClearCart)
	cart.GET("/admin/all", RequireRole(domain.RoleAdmin), h.ListCarts)

	orders := r.Group("/orders", RequireAuth(h.tokens))
	orders.POST("/create", h.CreateOrder)
	orders.GET("", h.ListMyOrders)
	orders.GET("/:id", h.GetOrder)
	orders.PATCH("/admin/:id/status", RequireRole(domain.RoleAdmin), h.UpdateOrderStatus)
	orders.GET("/admin/all", RequireRole(domain.RoleAdmin), h.ListAllOrders)

	users := r.Group("/users", RequireAuth(h.tokens), RequireRole(domain.RoleAdmin))
	users.GET("", h.ListUsers)
	users.PUT("/:id", h.UpdateUser)
	users.DELETE("/:id", h.DeleteUser)
}

// fail maps domain errors onto the HTTP taxonomy. Anything unrecognized is
// logged and reported as a generic 500 so store internals never leak.
func fail(c *gin.Context, err error) {
	var stockErr *domain.InsufficientStockError

	switch {
	case errors.As(err, &stockErr),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrStatusFinal):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrCartNotFound),
		errors.Is(err, domain.ErrCartItemNotFound),
		errors.Is(err, domain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
