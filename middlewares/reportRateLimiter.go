package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"upaya-be/logger"
)

// Counter is the subset of Redis the limiter relies on.
type Counter interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	TTL(ctx context.Context, key string) (time.Duration, error)
}

// RedisCounter implements Counter on a go-redis client.
type RedisCounter struct {
	Client *redis.Client
}

func (r RedisCounter) Incr(ctx context.Context, key string) (int64, error) {
	return r.Client.Incr(ctx, key).Result()
}

func (r RedisCounter) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return r.Client.Expire(ctx, key, ttl).Err()
}

func (r RedisCounter) TTL(ctx context.Context, key string) (time.Duration, error) {
	return r.Client.TTL(ctx, key).Result()
}

// ReportRateLimiter allows each client at most limit report submissions per
// window. Clients are keyed by IP since there are no accounts.
func ReportRateLimiter(counter Counter, prefix string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		clientKey := prefix + ":" + c.ClientIP()

		count, err := counter.Incr(ctx, clientKey)
		if err != nil {
			logger.Get().WithError(err).WithField("key", clientKey).Error("rate limiter: incr failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "redis error incrementing count"})
			return
		}

		// Set TTL only on the first hit of the window
		if count == 1 {
			if err := counter.Expire(ctx, clientKey, window); err != nil {
				logger.Get().WithError(err).WithField("key", clientKey).Error("rate limiter: expire failed")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "redis error setting TTL"})
				return
			}
		}

		if count > int64(limit) {
			retryAfter, _ := counter.TTL(ctx, clientKey)
			logger.Get().WithFields(logrus.Fields{
				"client": c.ClientIP(),
				"count":  count,
			}).Warn("rate limiter: report limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter.Seconds(),
			})
			return
		}

		c.Next()
	}
}
