package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"villagemart/internal/pkg/response"
)

// RequireRole aborts with 403 unless the authenticated role matches one
// of the allowed roles. Must run after Auth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied for role "+role)
		c.Abort()
	}
}
