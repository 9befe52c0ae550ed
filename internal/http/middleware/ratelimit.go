package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// SubmitRateLimit caps complaint submissions per authenticated user
// using a fixed redis window. The limiter fails open: a redis error
// never blocks the request. With a nil client, a non-positive limit,
// or a non-positive window it is a no-op, so the service runs without
// redis at all.
func SubmitRateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	if rdb == nil || limit <= 0 || window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.Next()
			return
		}
		key := fmt.Sprintf("ratelimit:submit:%s:%d", actor.ID, time.Now().Unix()/int64(window.Seconds()))

		ctx := c.Request.Context()
		n, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if n == 1 {
			rdb.Expire(ctx, key, window)
		}
		if n > int64(limit) {
			c.Header("Retry-After", fmt.Sprint(int(window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many complaints submitted, please try again later",
			})
			return
		}
		c.Next()
	}
}
