// controller/access_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	gatehouse_errors "github.com/headwall-io/gatehouse/errors"
	"github.com/headwall-io/gatehouse/model"
	"github.com/headwall-io/gatehouse/service"
	"github.com/headwall-io/gatehouse/util"
)

// AccessController exposes the permission resolver to handler layers that
// are not in-process.
type AccessController struct {
	accessService service.IAccessService
}

func NewAccessController(accessService service.IAccessService) *AccessController {
	return &AccessController{accessService: accessService}
}

func (ac *AccessController) RegisterRoutes(r *gin.RouterGroup) {
	access := r.Group("/access")
	{
		// Without a resource id the computation is platform-scoped: only
		// platform admins hold capabilities there.
		access.GET("/permissions", ac.GetPermissions)
		access.GET("/permissions/:resourceId", ac.GetPermissions)
		access.POST("/check", ac.CheckAccess)
		access.DELETE("/cache", ac.InvalidateResourceCache)
	}
}

// ResourceID may be empty: the check is then platform-scoped.
type checkAccessRequest struct {
	ResourceID string `json:"resource_id"`
	Capability string `json:"capability" binding:"required"`
}

// GetPermissions returns the full capability set for the requesting
// principal on one resource. UI layers use this to show or hide actions.
func (ac *AccessController) GetPermissions(c *gin.Context) {
	principalID, ok := util.GetPrincipalIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	resourceID := c.Param("resourceId")

	permissions, err := ac.accessService.ComputePermissions(c.Request.Context(), principalID, resourceID)
	if err != nil {
		switch {
		case errors.Is(err, gatehouse_errors.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		case errors.Is(err, gatehouse_errors.ErrPrincipalNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		case gatehouse_errors.IsTransient(err):
			util.RespondWithError(c, http.StatusServiceUnavailable, "Permission computation unavailable", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to compute permissions", err)
		}
		return
	}

	c.JSON(http.StatusOK, permissions)
}

// CheckAccess verifies a single capability. Denials name the missing
// capability so the caller can branch precisely.
func (ac *AccessController) CheckAccess(c *gin.Context) {
	principalID, ok := util.GetPrincipalIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req checkAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := ac.accessService.CheckAccess(c.Request.Context(), principalID, req.ResourceID, model.Capability(req.Capability))
	if err != nil {
		var unauthorized *gatehouse_errors.UnauthorizedError
		switch {
		case errors.As(err, &unauthorized):
			c.JSON(http.StatusForbidden, gin.H{
				"error":              "forbidden",
				"missing_capability": unauthorized.Capability,
			})
		case errors.Is(err, gatehouse_errors.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		case errors.Is(err, gatehouse_errors.ErrPrincipalNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		case gatehouse_errors.IsTransient(err):
			util.RespondWithError(c, http.StatusServiceUnavailable, "Access check unavailable", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Access check failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"allowed": true})
}

// InvalidateResourceCache drops the cached permission sets of every
// principal on one resource, after an ownership transfer or deletion.
func (ac *AccessController) InvalidateResourceCache(c *gin.Context) {
	resourceID := c.Query("resource_id")
	if resourceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resource_id query parameter required"})
		return
	}

	ac.accessService.InvalidateResource(resourceID)
	c.Status(http.StatusNoContent)
}
