// controller/controllers.go
package controller

import (
	"github.com/headwall-io/gatehouse/audit"
	"github.com/headwall-io/gatehouse/service"
)

type Controllers struct {
	Access *AccessController
	Quota  *QuotaController
	Tenant *TenantController
	Audit  *AuditController
}

func InitializeControllers(services *service.Services, auditService audit.Service) *Controllers {
	return &Controllers{
		Access: NewAccessController(services.Access),
		Quota:  NewQuotaController(services.Quota),
		Tenant: NewTenantController(services.Tenant),
		Audit:  NewAuditController(auditService),
	}
}
