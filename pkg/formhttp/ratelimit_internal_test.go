package formhttp

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_Take(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	l := newLimiter(2, time.Second)
	l.now = func() time.Time { return now }

	remaining, _ := l.take("10.0.0.1")
	assert.Equal(t, 1, remaining)
	remaining, _ = l.take("10.0.0.1")
	assert.Equal(t, 0, remaining)

	remaining, resetAt := l.take("10.0.0.1")
	assert.Equal(t, -1, remaining)
	assert.Equal(t, now.Add(time.Second), resetAt)

	remaining, _ = l.take("10.0.0.2")
	assert.Equal(t, 1, remaining, "buckets are per client")

	now = now.Add(1500 * time.Millisecond)
	remaining, _ = l.take("10.0.0.1")
	assert.Equal(t, 0, remaining, "one token regained")

	now = now.Add(time.Hour)
	remaining, _ = l.take("10.0.0.1")
	assert.Equal(t, 1, remaining, "refill is capped at burst")
}

func TestClientKey(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", clientKey(r))

	r.RemoteAddr = "192.0.2.1"
	assert.Equal(t, "192.0.2.1", clientKey(r))
}
