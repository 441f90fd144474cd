// service/services.go
package service

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/headwall-io/gatehouse/audit"
	"github.com/headwall-io/gatehouse/dao"
	"github.com/headwall-io/gatehouse/util"
)

type Services struct {
	Tenant ITenantService
	Access IAccessService
	Quota  IQuotaService
}

// InitializeServices wires the DAOs into the decision services. Each service
// owns its own cache instance; nothing cache-shaped lives at package level.
func InitializeServices(
	driver neo4j.Driver,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	eventBus *util.EventBus,
	tenantCacheTTL time.Duration,
	permissionCacheTTL time.Duration,
	useSharedTenantCache bool,
) (*Services, error) {
	tenantDAO := dao.NewTenantDAO(driver)
	resourceDAO := dao.NewResourceDAO(driver)
	membershipDAO := dao.NewMembershipDAO(driver)
	principalDAO := dao.NewPrincipalDAO(driver)

	services := &Services{
		Tenant: NewTenantService(tenantDAO, validationUtil, tenantCacheTTL, eventBus, useSharedTenantCache),
		Access: NewAccessService(resourceDAO, membershipDAO, principalDAO, validationUtil, auditService, permissionCacheTTL, eventBus),
		Quota:  NewQuotaService(resourceDAO, principalDAO, validationUtil),
	}

	return services, nil
}
