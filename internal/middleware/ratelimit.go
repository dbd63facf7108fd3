package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
)

// RateLimiter provides Redis-backed fixed window rate limiting per client IP.
type RateLimiter struct {
	rdb     *redis.Client
	maxReqs int
	window  time.Duration
}

// NewRateLimiter creates a rate limiter. A nil client disables limiting.
func NewRateLimiter(rdb *redis.Client, maxReqs, windowSec int) *RateLimiter {
	return &RateLimiter{
		rdb:     rdb,
		maxReqs: maxReqs,
		window:  time.Duration(windowSec) * time.Second,
	}
}

// Handler returns a Fiber middleware handler for rate limiting.
func (rl *RateLimiter) Handler() fiber.Handler {
	return func(c fiber.Ctx) error {
		if rl.rdb == nil {
			return c.Next()
		}
		key := "ratelimit:" + c.IP()
		ctx := c.Context()

		count, err := rl.rdb.Incr(ctx, key).Result()
		if err != nil {
			// Fail open when Redis is down.
			return c.Next()
		}
		if count == 1 {
			rl.rdb.Expire(ctx, key, rl.window)
		}

		ttl, _ := rl.rdb.TTL(ctx, key).Result()
		reset := int(ttl.Seconds())

		c.Set("X-RateLimit-Limit", strconv.Itoa(rl.maxReqs))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(max(0, int64(rl.maxReqs)-count), 10))
		c.Set("X-RateLimit-Reset", strconv.Itoa(reset))

		if int(count) > rl.maxReqs {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":       "rate limit exceeded",
				"retry_after": reset,
			})
		}

		return c.Next()
	}
}
