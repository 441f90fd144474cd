// util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/headwall-io/gatehouse/logging"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// GetPrincipalIDFromContext returns the requesting principal id placed in
// the gin context by the principal middleware.
func GetPrincipalIDFromContext(c *gin.Context) (string, bool) {
	principalID, exists := c.Get("principalID")
	if !exists {
		return "", false
	}
	id, ok := principalID.(string)
	return id, ok && id != ""
}
