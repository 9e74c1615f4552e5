package ratelimiter

import "time"

// SetClock replaces the time source.
func (b *Bucket) SetClock(now func() time.Time) {
	b.now = now
}
