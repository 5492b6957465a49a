package middleware

import (
	"net/http"
	"strings"

	"travelbackend/internal/auth"
	"travelbackend/internal/domain"

	"github.com/gin-gonic/gin"
)

const (
	authUserIDKey = "auth_user_id"
	authRoleKey   = "auth_user_role"
)

// RequireAuth validates the bearer token and stores the caller's identity in
// the gin context.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "missing or malformed authorization header")
			return
		}
		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}
		c.Set(authUserIDKey, claims.UserID)
		c.Set(authRoleKey, claims.Role)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if AuthRole(c) != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message":    "admin access required",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"message":    msg,
		"request_id": GetRequestID(c),
	})
}

// AuthUserID returns the authenticated user id, or 0 when unauthenticated.
func AuthUserID(c *gin.Context) int64 {
	if v, ok := c.Get(authUserIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// AuthRole returns the authenticated user's role, empty when unauthenticated.
func AuthRole(c *gin.Context) domain.UserRole {
	if v, ok := c.Get(authRoleKey); ok {
		if role, ok := v.(domain.UserRole); ok {
			return role
		}
	}
	return ""
}
