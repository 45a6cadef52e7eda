package middleware

import (
	"context"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// counter increments the hit count for key within the current window.
type counter interface {
	Hit(ctx context.Context, key string) (int, error)
}

type RateLimiter struct {
	counter counter
	limit   int
	stop    func()
}

// NewRateLimiter counts in process memory. Call Stop to end its cleanup loop.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	c := newMemoryCounter(window)
	return &RateLimiter{counter: c, limit: limit, stop: c.Stop}
}

// NewRedisRateLimiter counts in Redis so several instances share one budget.
func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		counter: &redisCounter{client: client, window: window, prefix: "ratelimit:"},
		limit:   limit,
	}
}

// Stop releases background resources held by the limiter.
func (rl *RateLimiter) Stop() {
	if rl.stop != nil {
		rl.stop()
	}
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count, err := rl.counter.Hit(r.Context(), clientIP(r))
		if err != nil {
			// Fail open.
			log.Printf("rate limiter unavailable: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		if count > rl.limit {
			writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port so every connection from one host shares a budget.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		return r.RemoteAddr
	}
	return host
}

type visitor struct {
	count       int
	windowStart time.Time
	lastSeen    time.Time
}

type memoryCounter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	window   time.Duration
	now      func() time.Time

	done     chan struct{}
	stopOnce sync.Once
}

func newMemoryCounter(window time.Duration) *memoryCounter {
	c := &memoryCounter{
		visitors: make(map[string]*visitor),
		window:   window,
		now:      time.Now,
		done:     make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

func (c *memoryCounter) cleanupLoop() {
	ticker := time.NewTicker(c.window)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *memoryCounter) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for ip, v := range c.visitors {
		if now.Sub(v.lastSeen) > c.window {
			delete(c.visitors, ip)
		}
	}
}

func (c *memoryCounter) Stop() {
	c.stopOnce.Do(func() { close(c.done) })
}

// Hit counts within fixed windows that start at a visitor's first request.
func (c *memoryCounter) Hit(ctx context.Context, key string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	v, exists := c.visitors[key]
	if !exists || now.Sub(v.windowStart) >= c.window {
		c.visitors[key] = &visitor{count: 1, windowStart: now, lastSeen: now}
		return 1, nil
	}

	v.count++
	v.lastSeen = now
	return v.count, nil
}

type redisCounter struct {
	client *redis.Client
	window time.Duration
	prefix string
}

// Hit increments the key and starts its TTL on the first hit of a window.
func (c *redisCounter) Hit(ctx context.Context, key string) (int, error) {
	k := c.prefix + key

	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, c.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return int(incr.Val()), nil
}
