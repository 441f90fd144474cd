// service/stores.go
package service

import (
	"context"

	"github.com/headwall-io/gatehouse/model"
)

// Store interfaces consumed by the decision services. The dao package
// provides the Neo4j implementations; tests substitute mocks.

type TenantStore interface {
	ResolveTenant(ctx context.Context, host string) (*model.Tenant, error)
}

type ResourceStore interface {
	FetchResource(ctx context.Context, resourceID string) (*model.Resource, error)
	CountLiveEntities(ctx context.Context, resourceID string, feature model.Feature) (int, error)
}

type MembershipStore interface {
	FetchActiveMemberships(ctx context.Context, resourceID, principalID string) ([]*model.TeamMembership, error)
}

type PrincipalStore interface {
	FetchPrincipalProfile(ctx context.Context, principalID string) (*model.PrincipalProfile, error)
}
