package cache

import "time"

// SetClock overrides the cache's time source for tests.
func (c *Cache[V]) SetClock(clock func() time.Time) {
	c.clock = clock
}
