package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/samadhaan/backend/internal/models"
)

// Context keys set by Auth and read by handlers.
const (
	ContextUserID = "userId"
	ContextRole   = "userRole"
)

// Auth verifies the bearer token and attaches the caller's identity to
// the request context. Tokens are HS256 JWTs issued by the external
// authentication service with "sub" and "role" claims; the signing
// secret is shared with it.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "Not authorized, no token")
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			abortUnauthorized(c, "Not authorized, token failed")
			return
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "Not authorized, token failed")
			return
		}
		sub, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)
		if sub == "" {
			abortUnauthorized(c, "Not authorized, token failed")
			return
		}

		c.Set(ContextUserID, sub)
		c.Set(ContextRole, role)
		c.Next()
	}
}

// ActorFrom reads the identity placed in the context by Auth. The bool
// is false when the request never passed through the middleware.
func ActorFrom(c *gin.Context) (models.Actor, bool) {
	id := c.GetString(ContextUserID)
	if id == "" {
		return models.Actor{}, false
	}
	return models.Actor{ID: id, Role: c.GetString(ContextRole)}, true
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}
