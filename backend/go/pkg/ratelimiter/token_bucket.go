package ratelimiter

import (
	"sync"
	"time"
)

// TokenBucket admits bursts up to its capacity and refills at a fixed rate.
type TokenBucket struct {
	rate     float64 // tokens added per second
	capacity float64
	tokens   float64
	last     time.Time
	now      Clock
	mu       sync.Mutex
}

// NewTokenBucket creates a full bucket.
// rate: the number of tokens to generate per second.
// capacity: the maximum number of tokens (burst size).
func NewTokenBucket(rate float64, capacity int, clock Clock) *TokenBucket {
	if clock == nil {
		clock = time.Now
	}
	return &TokenBucket{
		rate:     rate,
		capacity: float64(capacity),
		tokens:   float64(capacity),
		last:     clock(),
		now:      clock,
	}
}

// Allow refills the bucket for the time elapsed since the last call and
// consumes one token if available.
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := tb.now()
	if elapsed := now.Sub(tb.last); elapsed > 0 {
		tb.tokens += elapsed.Seconds() * tb.rate
		if tb.tokens > tb.capacity {
			tb.tokens = tb.capacity
		}
		tb.last = now
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}
