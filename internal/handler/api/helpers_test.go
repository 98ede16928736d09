//go:build unit

package api_test

import (
	"net/http"

	"court-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const testToken = "bearer-token"

// fakeAuth stands in for RequireAuth: any bearer header authenticates as *who.
func fakeAuth(who *shared.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"kind": "Unauthorized", "message": "Unauthorized"}})
			return
		}
		c.Set("user_id", who.ID)
		c.Set("user_role", who.Role)
		c.Next()
	}
}
