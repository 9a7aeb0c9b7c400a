package httpmiddleware

import (
	"errors"
	"fmt"
	"net/http"

	"DevOpsFacts/backend/go/internal/models"
	"DevOpsFacts/backend/go/pkg/circuitbreaker"
	"DevOpsFacts/backend/go/pkg/logger"
	"DevOpsFacts/backend/go/pkg/ratelimiter"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares so that the first one is outermost.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// logRejected records a request answered by this package without reaching
// the router, whose access log therefore never sees it.
func logRejected(log *logger.Logger, r *http.Request, status int, reason string) {
	log.WithRequest(models.RequestInfo{
		RequestID: r.Header.Get("X-Request-ID"),
		Method:    r.Method,
		Path:      r.URL.Path,
		Status:    status,
		ClientIP:  r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}).WithField("reason", reason).Warn("request rejected")
}

// RateLimit rejects requests with 429 when the limiter denies them.
func RateLimit(limiter ratelimiter.Limiter, log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logRejected(log, r, http.StatusTooManyRequests, "rate limited")
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// CircuitBreak counts responses with status >= 500 as failures and answers
// 503 without calling the handler while the circuit is open.
func CircuitBreak(breaker *circuitbreaker.Breaker, log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			err := breaker.Do(func() error {
				next.ServeHTTP(rw, r)
				if rw.status >= http.StatusInternalServerError {
					return fmt.Errorf("server error: status code %d", rw.status)
				}
				return nil
			})

			// The handler has already written its own 5xx response.
			if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
				logRejected(log, r, http.StatusServiceUnavailable, "circuit open")
				http.Error(w, "Service Unavailable: Circuit Breaker is open", http.StatusServiceUnavailable)
			}
		})
	}
}
