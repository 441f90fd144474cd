// Package mock_audit provides an in-memory audit.Service for tests.
package mock_audit

import (
	"context"
	"sync"
	"time"

	"github.com/headwall-io/gatehouse/audit"
)

// RecordingService captures decision logs and integrity warnings instead of
// indexing them.
type RecordingService struct {
	mu        sync.Mutex
	Decisions []audit.DecisionLog
	Warnings  []audit.IntegrityWarning
}

var _ audit.Service = (*RecordingService)(nil)

func NewRecordingService() *RecordingService {
	return &RecordingService{}
}

func (s *RecordingService) RecordDecision(ctx context.Context, log audit.DecisionLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Decisions = append(s.Decisions, log)
}

func (s *RecordingService) RecordIntegrityWarning(ctx context.Context, warning audit.IntegrityWarning) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Warnings = append(s.Warnings, warning)
}

func (s *RecordingService) QueryDecisions(ctx context.Context, from, to time.Time, principalID, resourceID string, limit, offset int) ([]audit.DecisionLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]audit.DecisionLog, len(s.Decisions))
	copy(out, s.Decisions)
	return out, nil
}

// WarningCount returns the number of recorded integrity warnings.
func (s *RecordingService) WarningCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Warnings)
}
