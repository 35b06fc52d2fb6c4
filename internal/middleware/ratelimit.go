package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/yookve/api/internal/model"
)

// clientLimiter pairs a token bucket with its last access time so
// idle entries can be evicted.
type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter applies per-client token bucket rate limiting. Clients
// are keyed by user ID when authenticated, otherwise by remote IP.
type RateLimiter struct {
	mu       sync.RWMutex
	clients  map[string]*clientLimiter
	rps      rate.Limit
	burst    int
	ttl      time.Duration
	stopChan chan struct{}
}

// RateLimitConfig holds rate limiter configuration
type RateLimitConfig struct {
	RequestsPerSecond float64       // Sustained rate (default 10)
	Burst             int           // Max burst (default 20)
	TTL               time.Duration // Idle eviction age (default 10 minutes)
	Cleanup           time.Duration // Cleanup interval (default 5 minutes)
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = 10
	}
	if cfg.Burst == 0 {
		cfg.Burst = 20
	}
	if cfg.TTL == 0 {
		cfg.TTL = 10 * time.Minute
	}
	if cfg.Cleanup == 0 {
		cfg.Cleanup = 5 * time.Minute
	}

	rl := &RateLimiter{
		clients:  make(map[string]*clientLimiter),
		rps:      rate.Limit(cfg.RequestsPerSecond),
		burst:    cfg.Burst,
		ttl:      cfg.TTL,
		stopChan: make(chan struct{}),
	}

	go rl.cleanupLoop(cfg.Cleanup)

	return rl
}

// Stop stops the rate limiter cleanup goroutine
func (rl *RateLimiter) Stop() {
	close(rl.stopChan)
}

func (rl *RateLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupExpired()
		case <-rl.stopChan:
			return
		}
	}
}

func (rl *RateLimiter) cleanupExpired() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-rl.ttl)
	for key, c := range rl.clients {
		if c.lastAccess.Before(cutoff) {
			delete(rl.clients, key)
		}
	}
}

// getOrCreate returns the limiter for a key, creating it on first use.
// The read lock covers the common path; the write path re-checks the
// map since another goroutine may have created the entry in between.
func (rl *RateLimiter) getOrCreate(key string) *rate.Limiter {
	now := time.Now()

	rl.mu.RLock()
	c, exists := rl.clients[key]
	rl.mu.RUnlock()

	if exists {
		rl.mu.Lock()
		c.lastAccess = now
		rl.mu.Unlock()
		return c.limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if c, exists = rl.clients[key]; exists {
		c.lastAccess = now
		return c.limiter
	}

	c = &clientLimiter{
		limiter:    rate.NewLimiter(rl.rps, rl.burst),
		lastAccess: now,
	}
	rl.clients[key] = c
	return c.limiter
}

// Allow reports whether a request for the given key may proceed
func (rl *RateLimiter) Allow(key string) bool {
	return rl.getOrCreate(key).Allow()
}

// clientIP strips the port from a remote address
func clientIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}

// RateLimit returns a middleware that applies rate limiting
func RateLimit(limiter *RateLimiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Key by user ID if authenticated, otherwise client IP
			key := GetUserID(r.Context())
			if key == "" {
				key = clientIP(r.RemoteAddr)
			}

			if !limiter.Allow(key) {
				retryAfter := 1
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				model.NewRateLimitError(retryAfter).WriteJSON(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
