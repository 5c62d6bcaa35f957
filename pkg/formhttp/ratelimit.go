package formhttp

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrymomot/formkit/pkg/cache"
)

// maxClients bounds the number of tracked client buckets; the least recently
// seen client is forgotten first.
const maxClients = 10_000

type bucket struct {
	tokens     int
	lastRefill time.Time
}

// limiter is a per-client token bucket: burst tokens, one regained per interval.
type limiter struct {
	burst    int
	interval time.Duration
	now      func() time.Time

	mu      sync.Mutex
	buckets *cache.LRU[string, *bucket]
}

func newLimiter(burst int, interval time.Duration) *limiter {
	return &limiter{
		burst:    burst,
		interval: interval,
		now:      time.Now,
		buckets:  cache.New[string, *bucket](maxClients),
	}
}

// take consumes a token for key. A negative remaining count means the
// request must be rejected.
func (l *limiter) take(key string) (remaining int, resetAt time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, _ := l.buckets.GetOrCreate(key, func() (*bucket, error) {
		return &bucket{tokens: l.burst, lastRefill: now}, nil
	})

	if intervals := int(now.Sub(b.lastRefill) / l.interval); intervals > 0 {
		b.tokens = min(b.tokens+min(intervals, l.burst), l.burst)
		b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * l.interval)
	}

	if b.tokens > 0 {
		b.tokens--
		return b.tokens, b.lastRefill.Add(l.interval)
	}
	return -1, b.lastRefill.Add(l.interval)
}

func (l *limiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		remaining, resetAt := l.take(clientKey(r))

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.burst))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, remaining)))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if remaining < 0 {
			retry := int(resetAt.Sub(l.now()).Seconds() + 0.999)
			w.Header().Set("Retry-After", strconv.Itoa(max(1, retry)))
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey is the client address without port, as resolved by middleware.RealIP.
func clientKey(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
