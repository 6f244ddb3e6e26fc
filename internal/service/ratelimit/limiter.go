package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"
)

// Limiter is a per-key token bucket.
type Limiter struct {
	mu    sync.Mutex
	m     map[string]*rate.Limiter
	rps   rate.Limit
	burst int
	max   int
}

// New allows rps requests per second per key with the given burst. At most
// maxKeys buckets are kept; when full the map is reset.
func New(rps float64, burst, maxKeys int) *Limiter {
	return &Limiter{
		m:     make(map[string]*rate.Limiter),
		rps:   rate.Limit(rps),
		burst: burst,
		max:   maxKeys,
	}
}

// Allow reports whether one request for key may proceed now.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	b, ok := l.m[key]
	if !ok {
		if l.max > 0 && len(l.m) >= l.max {
			l.m = make(map[string]*rate.Limiter)
		}
		b = rate.NewLimiter(l.rps, l.burst)
		l.m[key] = b
	}
	l.mu.Unlock()
	return b.Allow()
}
