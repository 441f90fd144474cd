package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	logger "github.com/headwall-io/gatehouse/logging"
)

// Principal extracts the authenticated principal id placed on the request by
// the upstream identity layer. Token issuance and verification happen before
// this service; an absent principal on a protected route is a 401.
func Principal(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		principalID := c.GetHeader("X-Principal-ID")
		if principalID == "" {
			if required {
				logger.Warn("No principal supplied for protected route")
				c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				c.Abort()
				return
			}
			c.Next()
			return
		}

		c.Set("principalID", principalID)
		c.Next()
	}
}
