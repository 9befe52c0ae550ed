package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samadhaan/backend/internal/models"
)

// RequireAdmin gates a route group to administrators. It assumes Auth
// ran earlier in the chain.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			abortUnauthorized(c, "Authentication required.")
			return
		}
		if actor.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Access denied. Admin role required.",
			})
			return
		}
		c.Next()
	}
}
