package middleware

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"reelkit-api/pkg/appenv"
	"reelkit-api/types"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// limiterEntry holds a per-client limiter and the last time it was seen.
type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterStore maps client IPs to token buckets. A janitor goroutine drops
// stale entries so the map cannot grow without bound.
type limiterStore struct {
	mu         sync.Mutex
	entries    map[string]*limiterEntry
	staleAfter time.Duration
}

func newLimiterStore(staleAfter time.Duration) *limiterStore {
	store := &limiterStore{
		entries:    make(map[string]*limiterEntry),
		staleAfter: staleAfter,
	}
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			store.cleanup()
		}
	}()
	return store
}

func (s *limiterStore) getOrCreate(key string, r rate.Limit, burst int) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[key]; ok {
		e.lastSeen = time.Now()
		return e.limiter
	}
	lim := rate.NewLimiter(r, burst)
	s.entries[key] = &limiterEntry{limiter: lim, lastSeen: time.Now()}
	return lim
}

func (s *limiterStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-s.staleAfter)
	for k, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, k)
		}
	}
}

func parseEnvRate() (rate.Limit, int) {
	rps := 10.0
	burst := 30
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_RPS")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			rps = f
		}
	}
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_BURST")); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			burst = i
		}
	}
	return rate.Limit(rps), burst
}

// isDisabled reports whether rate limiting is switched off, which it always
// is under APP_ENV=test.
func isDisabled() bool {
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("RATE_LIMIT_ENABLED"))); v == "0" || v == "false" || v == "no" {
		return true
	}
	return appenv.IsTest()
}

// RateLimitMiddleware applies per-IP token bucket limiting. Requests carry no
// verified identity in this system, so the client IP is the only usable key.
// Preflight requests, /health, and the preview websocket are exempt.
func RateLimitMiddleware() gin.HandlerFunc {
	if isDisabled() {
		return func(c *gin.Context) { c.Next() }
	}

	r, burst := parseEnvRate()
	store := newLimiterStore(10 * time.Minute)

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method == http.MethodOptions || path == "/health" || strings.HasPrefix(path, "/ws/") {
			c.Next()
			return
		}

		lim := store.getOrCreate("ip:"+c.ClientIP(), r, burst)
		if !lim.Allow() {
			c.Header("Retry-After", "1")
			c.JSON(http.StatusTooManyRequests, types.NewErrorResponse("RATE_LIMIT_EXCEEDED", "Too many requests"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimitAuthMiddleware applies a stricter per-IP limit for /auth/login,
// independent from the global limiter.
func RateLimitAuthMiddleware() gin.HandlerFunc {
	if isDisabled() {
		return func(c *gin.Context) { c.Next() }
	}
	store := newLimiterStore(10 * time.Minute)
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		lim := store.getOrCreate("auth:"+c.ClientIP(), rate.Limit(1.0), 5)
		if !lim.Allow() {
			c.Header("Retry-After", "1")
			c.JSON(http.StatusTooManyRequests, types.NewErrorResponse("RATE_LIMIT_EXCEEDED", "Too many requests"))
			c.Abort()
			return
		}
		c.Next()
	}
}
