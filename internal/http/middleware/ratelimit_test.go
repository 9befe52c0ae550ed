package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func limiterRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/complaints", mw, func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})
	return r
}

func postComplaint(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/complaints", nil))
	return w
}

func TestSubmitRateLimitDisabledWithoutRedis(t *testing.T) {
	r := limiterRouter(SubmitRateLimit(nil, 30, time.Minute))
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusCreated, postComplaint(r).Code)
	}
}

func TestSubmitRateLimitDisabledWithZeroWindow(t *testing.T) {
	// Misconfigured window must disable the limiter, not divide by zero.
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer rdb.Close()

	r := limiterRouter(SubmitRateLimit(rdb, 30, 0))
	assert.Equal(t, http.StatusCreated, postComplaint(r).Code)
}

func TestSubmitRateLimitDisabledWithZeroLimit(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer rdb.Close()

	r := limiterRouter(SubmitRateLimit(rdb, 0, time.Minute))
	assert.Equal(t, http.StatusCreated, postComplaint(r).Code)
}
