package ratelimiter

import (
	"sync"
	"time"
)

// FixedWindow admits at most limit requests per window. The window restarts
// on the first request after the previous one expired.
type FixedWindow struct {
	limit  int
	window time.Duration
	count  int
	start  time.Time
	now    Clock
	mu     sync.Mutex
}

// NewFixedWindow creates a FixedWindow limiter.
func NewFixedWindow(limit int, window time.Duration, clock Clock) *FixedWindow {
	if clock == nil {
		clock = time.Now
	}
	return &FixedWindow{
		limit:  limit,
		window: window,
		start:  clock(),
		now:    clock,
	}
}

func (fw *FixedWindow) Allow() bool {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	now := fw.now()
	if !now.Before(fw.start.Add(fw.window)) {
		fw.start = now
		fw.count = 0
	}

	if fw.count < fw.limit {
		fw.count++
		return true
	}
	return false
}
