package http

import (
	"net/http"
	"strings"

	"shop-backend/internal/auth"
	"shop-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// RequireAuth verifies the bearer token and attaches the typed principal to
// the request context. Requests without a valid token never reach a handler.
func RequireAuth(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := bearerPrincipal(c, tokens)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			c.Abort()
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireRole guards admin routes; it must run after RequireAuth.
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := principalFrom(c)
		if !ok || principal.Role != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func principalFrom(c *gin.Context) (auth.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return auth.Principal{}, false
	}
	principal, ok := v.(auth.Principal)
	return principal, ok
}

// bearerPrincipal parses an Authorization header if one is present. Used by
// RequireAuth and by the register handler, where an admin token optionally
// unlocks role assignment.
func bearerPrincipal(c *gin.Context, tokens *auth.TokenIssuer) (auth.Principal, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return auth.Principal{}, false
	}
	principal, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return auth.Principal{}, false
	}
	return principal, true
}
