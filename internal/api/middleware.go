package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderbook/travel-booking-backend/internal/auth"
)

// RequireRole ensures the authenticated user has the given role.
// It MUST be used after auth.AuthRequired middleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.GetUserID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if auth.GetUserRole(c) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: " + role + " access required"})
			return
		}

		c.Next()
	}
}
