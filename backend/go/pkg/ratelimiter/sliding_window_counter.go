package ratelimiter

import (
	"sync"
	"time"
)

// SlidingWindowCounter splits the window into buckets and sums their counts.
// It uses constant memory, unlike SlidingWindowLog, and is smoother at window
// edges than FixedWindow.
type SlidingWindowCounter struct {
	limit      int
	bucketSize time.Duration
	buckets    []int
	current    int
	bucketEnd  time.Time // end of the current bucket
	now        Clock
	mu         sync.Mutex
}

// NewSlidingWindowCounter creates a SlidingWindowCounter.
// numBuckets <= 0 falls back to 10 buckets.
func NewSlidingWindowCounter(limit int, window time.Duration, numBuckets int, clock Clock) *SlidingWindowCounter {
	if clock == nil {
		clock = time.Now
	}
	if numBuckets <= 0 {
		numBuckets = 10
	}
	bucketSize := window / time.Duration(numBuckets)
	if bucketSize <= 0 {
		bucketSize = 1
	}
	return &SlidingWindowCounter{
		limit:      limit,
		bucketSize: bucketSize,
		buckets:    make([]int, numBuckets),
		bucketEnd:  clock().Add(bucketSize),
		now:        clock,
	}
}

// slide clears every bucket that has fallen out of the window. Must be
// called with mu held.
func (sc *SlidingWindowCounter) slide(now time.Time) {
	if now.Before(sc.bucketEnd) {
		return
	}
	steps := int(now.Sub(sc.bucketEnd)/sc.bucketSize) + 1
	if steps >= len(sc.buckets) {
		for i := range sc.buckets {
			sc.buckets[i] = 0
		}
	} else {
		for i := 1; i <= steps; i++ {
			sc.buckets[(sc.current+i)%len(sc.buckets)] = 0
		}
	}
	sc.current = (sc.current + steps) % len(sc.buckets)
	sc.bucketEnd = sc.bucketEnd.Add(time.Duration(steps) * sc.bucketSize)
}

func (sc *SlidingWindowCounter) Allow() bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.slide(sc.now())

	total := 0
	for _, n := range sc.buckets {
		total += n
	}
	if total < sc.limit {
		sc.buckets[sc.current]++
		return true
	}
	return false
}
