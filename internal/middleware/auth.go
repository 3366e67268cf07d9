package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hirewire/jobboard-backend/internal/models"
)

// Principal is the authenticated caller as resolved by the auth gateway.
// Session issuance is out of scope here; the gateway terminates auth and
// forwards the identity in trusted headers.
type Principal struct {
	ID   uuid.UUID
	Role string
}

const principalKey = "principal"

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

// Authenticate parses the gateway identity headers into the request
// context. Anonymous requests pass through; role gates reject them.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawID := c.GetHeader(headerUserID)
		if rawID == "" {
			c.Next()
			return
		}
		id, err := uuid.Parse(rawID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid user identity"})
			return
		}
		c.Set(principalKey, Principal{ID: id, Role: c.GetHeader(headerUserRole)})
		c.Next()
	}
}

// RequireAdmin gates administrator-only routes.
func RequireAdmin() gin.HandlerFunc { return requireRole(models.RoleAdmin) }

// RequireEmployer gates employer-only routes.
func RequireEmployer() gin.HandlerFunc { return requireRole(models.RoleEmployer) }

func requireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if p.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the request principal, if any.
func CurrentUser(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
