package ratelimiter

import (
	"sync"
	"time"
)

// LeakyBucket queues up to capacity requests and drains them at a steady
// rate, smoothing bursts instead of admitting them at once.
type LeakyBucket struct {
	rate     float64 // requests drained per second
	capacity float64
	level    float64
	last     time.Time
	now      Clock
	mu       sync.Mutex
}

// NewLeakyBucket creates an empty bucket.
// rate: the number of requests drained per second.
// capacity: the maximum burst size.
func NewLeakyBucket(rate float64, capacity int, clock Clock) *LeakyBucket {
	if clock == nil {
		clock = time.Now
	}
	return &LeakyBucket{
		rate:     rate,
		capacity: float64(capacity),
		last:     clock(),
		now:      clock,
	}
}

// Allow drains the bucket for the time elapsed since the last call and
// admits the request if it still has room.
func (lb *LeakyBucket) Allow() bool {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	now := lb.now()
	if elapsed := now.Sub(lb.last); elapsed > 0 {
		lb.level -= elapsed.Seconds() * lb.rate
		if lb.level < 0 {
			lb.level = 0
		}
		lb.last = now
	}

	if lb.level+1 <= lb.capacity {
		lb.level++
		return true
	}
	return false
}
