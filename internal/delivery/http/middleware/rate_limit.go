package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/pkg/logger"
	"go-jobmatch-backend/pkg/redis"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds configuration for the fixed-window limiter.
type RateLimitConfig struct {
	Limit     int
	Window    time.Duration
	KeyPrefix string
	// FailClosed rejects requests when Redis errors; auth endpoints use it.
	FailClosed bool
	KeyFunc    func(*gin.Context) string
}

// LoginRateLimitConfig limits credential-guessing on login/register.
func LoginRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:login:",
		FailClosed: true,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// Atomic increment with TTL set on first hit.
// KEYS[1] = counter key, ARGV[1] = TTL seconds. Returns current count.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	rateLimitStore sync.Map
	cleanupOnce    sync.Once
)

func startCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			rateLimitStore.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				if now.After(entry.resetAt) {
					rateLimitStore.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}()
}

// RateLimit enforces cfg against Redis when available, falling back to an
// in-process counter otherwise.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	cleanupOnce.Do(startCleanup)

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + cfg.KeyFunc(c)

		var count int
		var err error

		if rdb := redis.Client(); rdb != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			ttl := strconv.Itoa(int(cfg.Window.Seconds()))
			var n int64
			n, err = rdb.Eval(ctx, rateLimitLuaScript, []string{key}, ttl).Int64()
			count = int(n)
		} else {
			count = incrementMemory(key, cfg.Window)
		}

		if err != nil {
			logger.Log.Warn("Rate limiter redis error, falling back", "error", err)
			if cfg.FailClosed {
				response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable")
				c.Abort()
				return
			}
			count = incrementMemory(key, cfg.Window)
		}

		if count > cfg.Limit {
			c.Header("Retry-After", fmt.Sprintf("%d", int(cfg.Window.Seconds())))
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}

func incrementMemory(key string, window time.Duration) int {
	val, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{resetAt: time.Now().Add(window)})
	entry := val.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(window)
	}
	entry.count++
	return entry.count
}
