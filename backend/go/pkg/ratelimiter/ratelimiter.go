// Package ratelimiter provides request admission control for the HTTP server.
package ratelimiter

import "time"

// Limiter decides whether a single request may proceed.
type Limiter interface {
	// Allow returns true if the request is allowed, otherwise returns false.
	Allow() bool
}

// Clock returns the current time. Limiters take one so tests can advance time.
type Clock func() time.Time
