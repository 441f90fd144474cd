// dao/principal_dao.go
package dao

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	gatehouse_errors "github.com/headwall-io/gatehouse/errors"
	"github.com/headwall-io/gatehouse/model"
	helper_util "github.com/headwall-io/gatehouse/util/helper"
)

type PrincipalDAO struct {
	Driver neo4j.Driver
}

func NewPrincipalDAO(driver neo4j.Driver) *PrincipalDAO {
	return &PrincipalDAO{Driver: driver}
}

// FetchPrincipalProfile loads the admin flag and plan tier for a principal.
// Returns (nil, nil) when the principal does not exist.
func (dao *PrincipalDAO) FetchPrincipalProfile(ctx context.Context, principalID string) (*model.PrincipalProfile, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (p:Principal {id: $id})
        RETURN p.isPlatformAdmin AS isPlatformAdmin, p.planTier AS planTier,
               p.updatedAt AS updatedAt
        `
		records, err := transaction.Run(query, map[string]interface{}{"id": principalID})
		if err != nil {
			return nil, err
		}
		if !records.Next() {
			return nil, nil
		}
		record := records.Record()

		profile := &model.PrincipalProfile{
			IsPlatformAdmin: helper_util.BoolValue(record, "isPlatformAdmin"),
			PlanTier:        model.PlanTier(helper_util.StringValue(record, "planTier")),
		}
		if profile.PlanTier == "" {
			profile.PlanTier = model.PlanFree
		}
		if t, err := helper_util.TimeValue(record, "updatedAt"); err == nil {
			profile.UpdatedAt = t
		}
		return profile, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch principal profile %s: %w", gatehouse_errors.ErrDatabaseOperation, principalID, err)
	}
	if result == nil {
		return nil, nil
	}
	return result.(*model.PrincipalProfile), nil
}
