package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	dErrors "saarthi/pkg/domain-errors"
	"saarthi/pkg/platform/httputil"
)

// slidingWindow tracks request timestamps per key. Sliding window rather than
// fixed buckets so bursts across a boundary cannot double the budget.
type slidingWindow struct {
	mu      sync.Mutex
	entries map[string][]time.Time
	limit   int
	window  time.Duration
}

func newSlidingWindow(limit int, window time.Duration) *slidingWindow {
	return &slidingWindow{
		entries: make(map[string][]time.Time),
		limit:   limit,
		window:  window,
	}
}

func (s *slidingWindow) allow(key string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := now.Add(-s.window)
	kept := s.entries[key][:0]
	for _, ts := range s.entries[key] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= s.limit {
		s.entries[key] = kept
		return false
	}
	s.entries[key] = append(kept, now)
	return true
}

// RateLimit caps requests per client IP within a one-minute sliding window.
// A limit of zero disables the middleware entirely. State is in-memory and
// per-process; that is enough for a single-instance deployment.
func RateLimit(perMinute int) func(http.Handler) http.Handler {
	window := newSlidingWindow(perMinute, time.Minute)
	return func(next http.Handler) http.Handler {
		if perMinute <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !window.allow(clientIP(r), time.Now()) {
				httputil.WriteError(w, dErrors.New(dErrors.CodeTooManyRequests, "rate limit exceeded, try again shortly"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
