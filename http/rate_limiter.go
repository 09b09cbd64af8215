package http

import (
	"sync"
	"time"
)

const (
	// Buckets untouched for this long are forgotten by the sweeper.
	idleBucketTTL = 1 * time.Hour
	sweepInterval = 30 * time.Minute
)

// bucket holds the requests a client has left in the current window.
type bucket struct {
	remaining   int
	windowStart time.Time
}

// take spends one request, starting a fresh window once the old one has
// elapsed. It reports false when the window is exhausted.
func (b *bucket) take(now time.Time, capacity int, window time.Duration) bool {
	if now.Sub(b.windowStart) >= window {
		b.remaining = capacity
		b.windowStart = now
	}
	if b.remaining <= 0 {
		return false
	}
	b.remaining--
	return true
}

// RateLimiter caps each client IP at a fixed number of calculator
// requests per window.
type RateLimiter struct {
	mu       sync.Mutex
	capacity int
	window   time.Duration
	buckets  map[string]*bucket
	now      func() time.Time

	done     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter starts a limiter and its background sweeper. Call Stop
// when the server shuts down.
func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity: capacity,
		window:   window,
		buckets:  make(map[string]*bucket),
		now:      time.Now,
		done:     make(chan struct{}),
	}
	go rl.sweepLoop()
	return rl
}

// Allow reports whether ip may make another request now.
func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.buckets[ip]
	if !ok {
		// Zero windowStart forces a fresh window on first use.
		b = &bucket{}
		r.buckets[ip] = b
	}
	return b.take(r.now(), r.capacity, r.window)
}

// RetryAfter is the window length, sent to throttled clients.
func (r *RateLimiter) RetryAfter() time.Duration {
	return r.window
}

// Stop ends the sweeper. Repeated calls are no-ops.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.done) })
}

func (r *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
			r.sweep()
		}
	}
}

func (r *RateLimiter) sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-idleBucketTTL)
	for ip, b := range r.buckets {
		if b.windowStart.Before(cutoff) {
			delete(r.buckets, ip)
		}
	}
}

func (r *RateLimiter) clientCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.buckets)
}
