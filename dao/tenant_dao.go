// dao/tenant_dao.go
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

type TenantDAO struct {
	Driver neo4j.Driver
}

func NewTenantDAO(driver neo4j.Driver) *TenantDAO {
	dao := &TenantDAO{Driver: driver}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Tenant", zap.Error(err))
	}
	return dao
}

func (dao *TenantDAO) EnsureUniqueConstraint(ctx context.Context) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE CONSTRAINT unique_tenant_id IF NOT EXISTS
        FOR (t:Tenant) REQUIRE t.id IS UNIQUE
        `
		_, err := transaction.Run(query, nil)
		return nil, err
	})
	return err
}

// ResolveTenant fetches the tenant whose host identifier matches host,
// case-insensitively. Returns (nil, nil) when no tenant is provisioned for
// the host; store failures come back as errors for the caller to classify
// as transient.
func (dao *TenantDAO) ResolveTenant(ctx context.Context, host string) (*model.Tenant, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (t:Tenant)
        WHERE toLower(t.hostIdentifier) = toLower($host)
        RETURN t.id AS id, t.hostIdentifier AS hostIdentifier, t.name AS name,
               t.siteType AS siteType, t.config AS config,
               t.createdAt AS createdAt, t.updatedAt AS updatedAt
        LIMIT 1
        `
		records, err := transaction.Run(query, map[string]interface{}{"host": host})
		if err != nil {
			return nil, err
		}
		if !records.Next() {
			return nil, nil
		}
		return parseTenantRecord(records.Record())
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve tenant for host %s: %w", gatehouse_errors.ErrDatabaseOperation, host, err)
	}
	if result == nil {
		return nil, nil
	}
	return result.(*model.Tenant), nil
}

func parseTenantRecord(record *neo4j.Record) (*model.Tenant, error) {
	tenant := &model.Tenant{
		ID:             helper_util.StringValue(record, "id"),
		HostIdentifier: helper_util.StringValue(record, "hostIdentifier"),
		Name:           helper_util.StringValue(record, "name"),
		SiteType:       helper_util.StringValue(record, "siteType"),
	}

	if configJSON := helper_util.StringValue(record, "config"); configJSON != "" {
		config, err := helper_util.ParseStringMap(configJSON)
		if err != nil {
			logger.Warn("Malformed tenant config, ignoring", zap.String("tenantID", tenant.ID), zap.Error(err))
		} else {
			tenant.Config = config
		}
	}

	if t, err := helper_util.TimeValue(record, "createdAt"); err == nil {
		tenant.CreatedAt = t
	}
	if t, err := helper_util.TimeValue(record, "updatedAt"); err == nil {
		tenant.UpdatedAt = t
	}

	return tenant, nil
}
