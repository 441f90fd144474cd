// dao/resource_dao.go
package dao

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	gatehouse_errors "github.com/headwall-io/gatehouse/errors"
	logger "github.com/headwall-io/gatehouse/logging"
	"github.com/headwall-io/gatehouse/model"
	helper_util "github.com/headwall-io/gatehouse/util/helper"
)

// featureLabels maps quota features to the node label backing them. Labels
// cannot be parameterized in Cypher, so only values from this table ever
// reach a query string.
var featureLabels = map[model.Feature]string{
	model.FeatureContacts:  "Contact",
	model.FeatureLeads:     "Lead",
	model.FeatureTasks:     "Task",
	model.FeatureTeamSeats: "TeamSeat",
	model.FeatureBlogPosts: "BlogPost",
}

type ResourceDAO struct {
	Driver neo4j.Driver
}

func NewResourceDAO(driver neo4j.Driver) *ResourceDAO {
	dao := &ResourceDAO{Driver: driver}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Resource", zap.Error(err))
	}
	return dao
}

func (dao *ResourceDAO) EnsureUniqueConstraint(ctx context.Context) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE CONSTRAINT unique_resource_id IF NOT EXISTS
        FOR (r:Resource) REQUIRE r.id IS UNIQUE
        `
		_, err := transaction.Run(query, nil)
		return nil, err
	})
	return err
}

// FetchResource loads a resource by id. Returns (nil, nil) when absent or
// soft-deleted.
func (dao *ResourceDAO) FetchResource(ctx context.Context, resourceID string) (*model.Resource, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (r:Resource {id: $id})
        WHERE r.deletedAt IS NULL
        RETURN r.id AS id, r.ownerPrincipalId AS ownerPrincipalId,
               r.tenantId AS tenantId, r.name AS name,
               r.createdAt AS createdAt, r.updatedAt AS updatedAt
        `
		records, err := transaction.Run(query, map[string]interface{}{"id": resourceID})
		if err != nil {
			return nil, err
		}
		if !records.Next() {
			return nil, nil
		}
		record := records.Record()

		resource := &model.Resource{
			ID:               helper_util.StringValue(record, "id"),
			OwnerPrincipalID: helper_util.StringValue(record, "ownerPrincipalId"),
			TenantID:         helper_util.StringValue(record, "tenantId"),
			Name:             helper_util.StringValue(record, "name"),
		}
		if t, err := helper_util.TimeValue(record, "createdAt"); err == nil {
			resource.CreatedAt = t
		}
		if t, err := helper_util.TimeValue(record, "updatedAt"); err == nil {
			resource.UpdatedAt = t
		}
		return resource, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch resource %s: %w", gatehouse_errors.ErrDatabaseOperation, resourceID, err)
	}
	if result == nil {
		return nil, nil
	}
	return result.(*model.Resource), nil
}

// CountLiveEntities counts non-deleted entities of a feature's backing label
// scoped to one resource. Used by the quota enforcer.
func (dao *ResourceDAO) CountLiveEntities(ctx context.Context, resourceID string, feature model.Feature) (int, error) {
	label, ok := featureLabels[feature]
	if !ok {
		return 0, fmt.Errorf("unknown feature %q", feature)
	}

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := fmt.Sprintf(`
        MATCH (e:%s {resourceId: $resourceId})
        WHERE e.deletedAt IS NULL
        RETURN count(e) AS total
        `, label)
		records, err := transaction.Run(query, map[string]interface{}{"resourceId": resourceID})
		if err != nil {
			return nil, err
		}
		if !records.Next() {
			return int64(0), nil
		}
		return helper_util.IntValue(records.Record(), "total"), nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count %s for resource %s: %w", gatehouse_errors.ErrDatabaseOperation, feature, resourceID, err)
	}
	return int(result.(int64)), nil
}
