package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/a-team/clinic-booking-api/internal/auth"
)

const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
)

// RequireAuth verifies the bearer token and puts the authenticated identity
// into the gin context for the gates and handlers downstream.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.Set(ContextUserID, claims.ID)
		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserRole, claims.Role)

		c.Next()
	}
}

// AllowRoles lets the request through only when the authenticated role is in
// the allow-list.
func AllowRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "You are Unauthorized to do this action"})
	}
}

// AllowRolesOrSelf lets privileged roles through unconditionally, and the
// selfRole through only when the token id matches the :id path param.
func AllowRolesOrSelf(selfRole string, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		if role == selfRole && c.GetString(ContextUserID) == c.Param("id") {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "You are Unauthorized to do this action"})
	}
}

// RequireSelf allows the request only when the token id matches the :id path
// param, regardless of role. Used for password changes.
func RequireSelf() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserID) != c.Param("id") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// RequireSelfRole is RequireSelf with the role pinned as well.
func RequireSelfRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserRole) != role || c.GetString(ContextUserID) != c.Param("id") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "You are Unauthorized to do this action"})
			return
		}
		c.Next()
	}
}
