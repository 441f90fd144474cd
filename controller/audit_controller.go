// controller/audit_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/headwall-io/gatehouse/audit"
	"github.com/headwall-io/gatehouse/util"
	helper_util "github.com/headwall-io/gatehouse/util/helper"
)

type AuditController struct {
	auditService audit.Service
}

func NewAuditController(auditService audit.Service) *AuditController {
	return &AuditController{auditService: auditService}
}

func (ac *AuditController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/audit/decisions", ac.QueryDecisions)
}

// QueryDecisions returns authorization decisions within a time range,
// optionally filtered by principal and resource.
func (ac *AuditController) QueryDecisions(c *gin.Context) {
	from := time.Now().Add(-24 * time.Hour)
	to := time.Now()

	if raw := c.Query("from"); raw != "" {
		t, err := helper_util.ParseTime(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from timestamp"})
			return
		}
		from = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := helper_util.ParseTime(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to timestamp"})
			return
		}
		to = t
	}

	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pagination parameters"})
		return
	}

	logs, err := ac.auditService.QueryDecisions(c.Request.Context(), from, to, c.Query("principal_id"), c.Query("resource_id"), limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to query decisions", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"decisions": logs})
}
