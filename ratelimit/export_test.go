// ratelimit/export_test.go
package ratelimit

import "time"

// SetClock replaces the limiter's time source in tests.
func (l *Limiter) SetClock(clock func() time.Time) {
	l.clock = clock
}
