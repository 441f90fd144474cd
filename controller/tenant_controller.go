// controller/tenant_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	gatehouse_errors "github.com/headwall-io/gatehouse/errors"
	"github.com/headwall-io/gatehouse/service"
	"github.com/headwall-io/gatehouse/util"
)

type TenantController struct {
	tenantService service.ITenantService
}

func NewTenantController(tenantService service.ITenantService) *TenantController {
	return &TenantController{tenantService: tenantService}
}

func (tc *TenantController) RegisterRoutes(r *gin.RouterGroup) {
	tenants := r.Group("/tenants")
	{
		tenants.GET("/resolve", tc.ResolveTenant)
		tenants.DELETE("/cache", tc.InvalidateCache)
	}
}

// ResolveTenant looks up the tenant for an explicit host identifier. The
// per-request resolution for the serving host happens in middleware; this
// endpoint serves provisioning and support tooling.
func (tc *TenantController) ResolveTenant(c *gin.Context) {
	host := c.Query("host")

	tenant, err := tc.tenantService.ResolveTenant(c.Request.Context(), host)
	if err != nil {
		switch {
		case errors.Is(err, gatehouse_errors.ErrInvalidHost):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid host identifier"})
		case errors.Is(err, gatehouse_errors.ErrTenantNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "tenant not found"})
		case errors.Is(err, gatehouse_errors.ErrInvalidTenantData):
			c.JSON(http.StatusNotFound, gin.H{"error": "tenant record invalid"})
		case gatehouse_errors.IsTransient(err):
			util.RespondWithError(c, http.StatusServiceUnavailable, "Tenant resolution unavailable", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to resolve tenant", err)
		}
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// InvalidateCache drops the cached entry for a host after provisioning
// changes it.
func (tc *TenantController) InvalidateCache(c *gin.Context) {
	host := c.Query("host")
	if host == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "host query parameter required"})
		return
	}

	tc.tenantService.InvalidateHost(c.Request.Context(), host)
	c.Status(http.StatusNoContent)
}
