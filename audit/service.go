// audit/service.go
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	logger "github.com/headwall-io/gatehouse/logging"
)

type Service interface {
	RecordDecision(ctx context.Context, log DecisionLog)
	RecordIntegrityWarning(ctx context.Context, warning IntegrityWarning)
	QueryDecisions(ctx context.Context, from, to time.Time, principalID, resourceID string, limit, offset int) ([]DecisionLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// RecordDecision indexes a decision asynchronously. The audit trail is
// best-effort: an indexing failure must never block or fail the decision
// it describes.
func (s *service) RecordDecision(ctx context.Context, log DecisionLog) {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}
	go func() {
		if err := s.repo.LogDecision(context.WithoutCancel(ctx), log); err != nil {
			logger.Warn("Failed to index decision log",
				zap.Error(err),
				zap.String("principalID", log.PrincipalID),
				zap.String("resourceID", log.ResourceID))
		}
	}()
}

func (s *service) RecordIntegrityWarning(ctx context.Context, warning IntegrityWarning) {
	if warning.ID == "" {
		warning.ID = uuid.New().String()
	}
	if warning.Timestamp.IsZero() {
		warning.Timestamp = time.Now()
	}
	go func() {
		if err := s.repo.LogIntegrityWarning(context.WithoutCancel(ctx), warning); err != nil {
			logger.Warn("Failed to index integrity warning",
				zap.Error(err),
				zap.String("kind", warning.Kind))
		}
	}()
}

func (s *service) QueryDecisions(ctx context.Context, from, to time.Time, principalID, resourceID string, limit, offset int) ([]DecisionLog, error) {
	return s.repo.QueryDecisions(ctx, from, to, principalID, resourceID, limit, offset)
}
