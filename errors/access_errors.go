package errors

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrQuotaExceeded = errors.New("quota exceeded")
	ErrRateLimited   = errors.New("rate limited")
	ErrTransient     = errors.New("transient store failure")
)

// UnauthorizedError reports the specific capability that was missing, so
// callers can surface a precise denial instead of a generic error.
type UnauthorizedError struct {
	PrincipalID string
	ResourceID  string
	Capability  string
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("principal %s lacks capability %s on resource %s", e.PrincipalID, e.Capability, e.ResourceID)
}

func (e *UnauthorizedError) Unwrap() error { return ErrUnauthorized }

// QuotaExceededError carries limit and current usage so the calling UI can
// present a specific upgrade path.
type QuotaExceededError struct {
	Feature string
	Limit   int
	Current int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded for %s: %d of %d used", e.Feature, e.Current, e.Limit)
}

func (e *QuotaExceededError) Unwrap() error { return ErrQuotaExceeded }

// RateLimitedError is recoverable: the caller may retry once the window
// elapses.
type RateLimitedError struct {
	Operation  string
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limit exceeded for %s, retry after %s", e.Operation, e.RetryAfter)
}

func (e *RateLimitedError) Unwrap() error { return ErrRateLimited }

// TransientError wraps an infrastructure failure the caller may retry.
// Authorization decisions made under a TransientError condition always deny.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient failure in %s: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() []error { return []error{ErrTransient, e.Err} }

// Transient wraps err as retryable, preserving nil.
func Transient(op string, err error) error {
	if err == nil {
		return nil
	}
	return &TransientError{Op: op, Err: err}
}

// IsTransient reports whether err is a retryable infrastructure failure as
// opposed to a definitive NotFound or denial.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}
