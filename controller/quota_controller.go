// controller/quota_controller.go
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

type QuotaController struct {
	quotaService service.IQuotaService
}

func NewQuotaController(quotaService service.IQuotaService) *QuotaController {
	return &QuotaController{quotaService: quotaService}
}

func (qc *QuotaController) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/quota/check", qc.CheckQuota)
}

type checkQuotaRequest struct {
	ResourceID string `json:"resource_id" binding:"required"`
	Feature    string `json:"feature" binding:"required"`
}

// CheckQuota reports whether the principal's plan allows creating one more
// entity of the feature. A denial carries limit and current usage so the UI
// can surface an upgrade prompt.
func (qc *QuotaController) CheckQuota(c *gin.Context) {
	principalID, ok := util.GetPrincipalIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req checkQuotaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	decision, err := qc.quotaService.CheckQuota(c.Request.Context(), principalID, req.ResourceID, model.Feature(req.Feature))
	if err != nil {
		var quotaErr *gatehouse_errors.QuotaExceededError
		switch {
		case errors.As(err, &quotaErr):
			c.JSON(http.StatusPaymentRequired, decision)
		case gatehouse_errors.IsTransient(err):
			util.RespondWithError(c, http.StatusServiceUnavailable, "Quota check unavailable", err)
		case errors.Is(err, gatehouse_errors.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, decision)
}
