package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	gatehouse_errors "github.com/headwall-io/gatehouse/errors"
	logger "github.com/headwall-io/gatehouse/logging"
	"github.com/headwall-io/gatehouse/model"
	"github.com/headwall-io/gatehouse/service"
)

// TenantResolver resolves the request's Host header to a tenant descriptor
// and stores it in the gin context. Unprovisioned hosts get a 404 so the
// caller can render a "not configured" state; registry outages get a 503
// because a retry may succeed.
func TenantResolver(tenantService service.ITenantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		host := hostWithoutPort(c.Request.Host)

		tenant, err := tenantService.ResolveTenant(c.Request.Context(), host)
		if err != nil {
			switch {
			case errors.Is(err, gatehouse_errors.ErrTenantNotFound),
				errors.Is(err, gatehouse_errors.ErrInvalidTenantData),
				errors.Is(err, gatehouse_errors.ErrInvalidHost):
				c.JSON(http.StatusNotFound, gin.H{"error": "site not configured"})
			case gatehouse_errors.IsTransient(err):
				logger.Error("Tenant resolution unavailable", zap.Error(err), zap.String("host", host))
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "tenant resolution unavailable"})
			default:
				logger.Error("Tenant resolution failed", zap.Error(err), zap.String("host", host))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "tenant resolution failed"})
			}
			c.Abort()
			return
		}

		c.Set("tenant", tenant)
		c.Set("tenantID", tenant.ID)
		c.Next()
	}
}

// TenantFromContext returns the tenant stored by TenantResolver.
func TenantFromContext(c *gin.Context) (*model.Tenant, bool) {
	value, exists := c.Get("tenant")
	if !exists {
		return nil, false
	}
	tenant, ok := value.(*model.Tenant)
	return tenant, ok
}

func hostWithoutPort(host string) string {
	if i := strings.LastIndex(host, ":"); i != -1 && !strings.Contains(host[i+1:], "]") {
		return host[:i]
	}
	return host
}
