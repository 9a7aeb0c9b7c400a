package ratelimiter

import (
	"sync"
	"time"
)

// SlidingWindowLog remembers the timestamp of every admitted request and
// admits a new one only if fewer than limit fall inside the trailing window.
type SlidingWindowLog struct {
	limit  int
	window time.Duration
	stamps []time.Time // oldest first
	now    Clock
	mu     sync.Mutex
}

// NewSlidingWindowLog creates a SlidingWindowLog limiter.
func NewSlidingWindowLog(limit int, window time.Duration, clock Clock) *SlidingWindowLog {
	if clock == nil {
		clock = time.Now
	}
	return &SlidingWindowLog{
		limit:  limit,
		window: window,
		now:    clock,
	}
}

func (sl *SlidingWindowLog) Allow() bool {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	now := sl.now()
	boundary := now.Add(-sl.window)

	expired := 0
	for expired < len(sl.stamps) && !sl.stamps[expired].After(boundary) {
		expired++
	}
	sl.stamps = sl.stamps[expired:]

	if len(sl.stamps) < sl.limit {
		sl.stamps = append(sl.stamps, now)
		return true
	}
	return false
}
