package npc

import (
	"sync"
	"time"
)

// Cooldown remembers the last time each key fired.
// The zero value is ready to use.
type Cooldown[K comparable] struct {
	mu   sync.Mutex
	last map[K]time.Time
}

// TryFire reports whether key may fire at now given duration d, and records
// now as the last fire time if so. A non-positive d always fires.
func (c *Cooldown[K]) TryFire(key K, now time.Time, d time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if d > 0 {
		if last, ok := c.last[key]; ok && now.Sub(last) < d {
			return false
		}
	}
	if c.last == nil {
		c.last = make(map[K]time.Time)
	}
	c.last[key] = now
	return true
}

// Remaining returns how long key must wait at now before it may fire again.
func (c *Cooldown[K]) Remaining(key K, now time.Time, d time.Duration) time.Duration {
	c.mu.Lock()
	last, ok := c.last[key]
	c.mu.Unlock()
	if !ok || d <= 0 {
		return 0
	}
	return max(last.Add(d).Sub(now), 0)
}

// Reset forgets key.
func (c *Cooldown[K]) Reset(key K) {
	c.mu.Lock()
	delete(c.last, key)
	c.mu.Unlock()
}

// Len returns the number of tracked keys.
func (c *Cooldown[K]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.last)
}
