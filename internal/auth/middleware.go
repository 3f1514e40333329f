package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const contextKeyIdentity = "auth_identity"

// Identity is the decoded token identity attached to the request context
// by RequireToken. Handlers downstream trust it without re-verifying.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

// IdentityFromContext returns the identity set by RequireToken.
func IdentityFromContext(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(contextKeyIdentity)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// RequireToken returns a middleware that verifies the Authorization
// bearer token and sets the identity in context. If missing or invalid,
// responds with 401.
func RequireToken(issuer *Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		claims, err := issuer.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		c.Set(contextKeyIdentity, Identity{
			UserID: claims.Subject,
			Email:  claims.Email,
			Name:   claims.Name,
		})
		c.Next()
	}
}
