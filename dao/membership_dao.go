// dao/membership_dao.go
package dao

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	gatehouse_errors "github.com/headwall-io/gatehouse/errors"
	logger "github.com/headwall-io/gatehouse/logging"
	"github.com/headwall-io/gatehouse/model"
	helper_util "github.com/headwall-io/gatehouse/util/helper"
)

type MembershipDAO struct {
	Driver neo4j.Driver
}

func NewMembershipDAO(driver neo4j.Driver) *MembershipDAO {
	return &MembershipDAO{Driver: driver}
}

// FetchActiveMemberships returns every active membership for a
// (resource, principal) pair, most recently updated first. The invariant is
// at most one; the caller treats extras as a data-integrity violation and
// uses the freshest.
func (dao *MembershipDAO) FetchActiveMemberships(ctx context.Context, resourceID, principalID string) ([]*model.TeamMembership, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (p:Principal {id: $principalId})-[m:MEMBER_OF]->(r:Resource {id: $resourceId})
        WHERE m.status = 'active'
        RETURN m.role AS role, m.status AS status, m.overrides AS overrides,
               m.invitedBy AS invitedBy, m.createdAt AS createdAt, m.updatedAt AS updatedAt
        ORDER BY m.updatedAt DESC
        `
		records, err := transaction.Run(query, map[string]interface{}{
			"principalId": principalID,
			"resourceId":  resourceID,
		})
		if err != nil {
			return nil, err
		}

		var memberships []*model.TeamMembership
		for records.Next() {
			m, err := parseMembershipRecord(records.Record(), resourceID, principalID)
			if err != nil {
				return nil, err
			}
			memberships = append(memberships, m)
		}
		return memberships, records.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch memberships for principal %s on resource %s: %w", gatehouse_errors.ErrDatabaseOperation, principalID, resourceID, err)
	}
	return result.([]*model.TeamMembership), nil
}

func parseMembershipRecord(record *neo4j.Record, resourceID, principalID string) (*model.TeamMembership, error) {
	m := &model.TeamMembership{
		ResourceID:  resourceID,
		PrincipalID: principalID,
		Role:        model.Role(helper_util.StringValue(record, "role")),
		Status:      model.MembershipStatus(helper_util.StringValue(record, "status")),
		InvitedBy:   helper_util.StringValue(record, "invitedBy"),
	}

	// Overrides are stored as a JSON object of nullable booleans; a null
	// value means "inherit the role default" and must survive decoding.
	if raw := helper_util.StringValue(record, "overrides"); raw != "" {
		overrides := map[model.Capability]*bool{}
		if err := json.Unmarshal([]byte(raw), &overrides); err != nil {
			logger.Warn("Malformed membership overrides, ignoring",
				zap.String("principalID", principalID),
				zap.String("resourceID", resourceID),
				zap.Error(err))
		} else {
			m.Overrides = overrides
		}
	}

	if t, err := helper_util.TimeValue(record, "createdAt"); err == nil {
		m.CreatedAt = t
	}
	if t, err := helper_util.TimeValue(record, "updatedAt"); err == nil {
		m.UpdatedAt = t
	}

	return m, nil
}
