package api

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/athlonet/sportdesk/internal/api/respond"
)

// TimingMiddleware reports the handler's wall time in an X-Process-Time
// header, the timing signal the dashboard's network panel reads.
func TimingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		elapsed := time.Since(start)
		w.Header().Set("X-Process-Time", fmt.Sprintf("%.2fms", float64(elapsed.Microseconds())/1000.0))
	})
}

// clientLimiters hands out one token bucket per client IP. Buckets are
// never evicted; the gateway fronts a single dashboard, not the open
// internet.
type clientLimiters struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	rate    rate.Limit
	burst   int
}

func (l *clientLimiters) bucketFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.buckets[ip]
	if !ok {
		b = rate.NewLimiter(l.rate, l.burst)
		l.buckets[ip] = b
	}
	return b
}

// RateLimitMiddleware throttles inbound requests per client IP: the given
// request count refills over the window, with burst capacity of half a
// window. Rejections carry a Retry-After of one window.
func RateLimitMiddleware(requestsPerWindow int, window time.Duration) func(http.Handler) http.Handler {
	limiters := &clientLimiters{
		buckets: make(map[string]*rate.Limiter),
		rate:    rate.Limit(float64(requestsPerWindow) / window.Seconds()),
		burst:   requestsPerWindow / 2,
	}
	retryAfter := strconv.Itoa(int(window.Seconds()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, _ := net.SplitHostPort(r.RemoteAddr)
			if ip == "" {
				ip = r.RemoteAddr
			}

			if !limiters.bucketFor(ip).Allow() {
				w.Header().Set("Retry-After", retryAfter)
				respond.WriteError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
